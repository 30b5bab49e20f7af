// Package prompt builds the instruction and user messages sent to the
// completion endpoint for each mode.
package prompt

import (
	"fmt"
	"strings"

	"shenurtures/pkg/response"
	"shenurtures/pkg/utils"
)

// MaxQuestionRunes caps free-text questions; longer input is truncated,
// not rejected.
const MaxQuestionRunes = 500

var systems = map[response.Mode]string{
	response.General: generalSystem,
	response.Symptom: symptomSystem,
}

// System returns the instruction text for a mode.
func System(mode response.Mode) string {
	return systems[mode]
}

// General produces the system and user messages for a free-text question.
// The question must be non-empty; callers reject empty input before this
// point. Input longer than MaxQuestionRunes is truncated.
func General(question string) (system, user string) {
	question = utils.TruncateRunes(strings.TrimSpace(question), MaxQuestionRunes)
	return systems[response.General], question
}

// Symptoms produces the system and user messages for a checklist
// submission, joining the selected symptom labels into a natural-language
// request. The label list must be non-empty after catalog filtering.
func Symptoms(labels []string) (system, user string) {
	user = fmt.Sprintf(
		"I have been experiencing the following: %s. Please explain how these symptoms might be connected to hormonal or reproductive health.",
		joinNatural(labels),
	)
	return systems[response.Symptom], user
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// Overrides is the shape of the optional PROMPTS_FILE. Empty fields keep
// the built-in text. Fallback overrides are validated before being
// accepted.
type Overrides struct {
	GeneralSystem   string `json:"general_system,omitempty"`
	SymptomSystem   string `json:"symptom_system,omitempty"`
	GeneralFallback string `json:"general_fallback,omitempty"`
	SymptomFallback string `json:"symptom_fallback,omitempty"`
}

// Apply installs the overrides. Intended for startup only.
func Apply(o Overrides) error {
	if s := strings.TrimSpace(o.GeneralSystem); s != "" {
		systems[response.General] = s
	}
	if s := strings.TrimSpace(o.SymptomSystem); s != "" {
		systems[response.Symptom] = s
	}
	if s := strings.TrimSpace(o.GeneralFallback); s != "" {
		if err := response.SetFallback(response.General, s); err != nil {
			return err
		}
	}
	if s := strings.TrimSpace(o.SymptomFallback); s != "" {
		if err := response.SetFallback(response.Symptom, s); err != nil {
			return err
		}
	}
	return nil
}
