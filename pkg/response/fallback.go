package response

import "fmt"

// Pre-authored, rule-compliant texts substituted whenever generation or
// validation fails. These are the last line of defense: a test asserts
// each passes its mode's full rule set, and SetFallback refuses any
// override that does not.

const generalFallback = "I understand that you are looking for clear answers about your health, " +
	"and it is completely natural to have these questions. Hormonal and reproductive health can " +
	"feel confusing because many symptoms overlap and every body is different. While I cannot " +
	"give you a detailed answer right now, please know that your concerns are valid and worth " +
	"exploring. Keeping a simple note of what you notice and when it happens can make future " +
	"conversations much easier. For guidance specific to your situation, I encourage you to " +
	"speak with a healthcare provider who can review your personal history and help you find answers."

const symptomFallback = "Thank you for sharing these symptoms with me. What you are describing " +
	"can be connected to hormonal changes, and it is common for several of these experiences to " +
	"appear together. Hormones such as estrogen, progesterone, and insulin influence many systems " +
	"at once, which is why shifts in one area of your health can show up in places that seem " +
	"unrelated, from your cycle to your skin, energy, and mood. These patterns are worth paying " +
	"attention to, and noticing them is already a helpful first step. Try keeping track of when " +
	"your symptoms occur and how long they last, since that record makes any evaluation much " +
	"easier. For a proper assessment and personal advice, please consult a healthcare provider " +
	"who can look at your full picture and recommend the right next steps for you."

var fallbacks = map[Mode]string{
	General: generalFallback,
	Symptom: symptomFallback,
}

// Fallback returns the fixed, pre-approved text for a mode. Selection is
// purely mode-keyed; the text is generic, never tailored to the request.
func Fallback(mode Mode) string {
	return fallbacks[mode]
}

// SetFallback replaces a mode's fallback text. Overrides are validated
// the same way generated output is, so a misconfigured text can never
// weaken the last line of defense. Intended for startup only; the map is
// read-only once the server is serving.
func SetFallback(mode Mode, text string) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown mode %q", mode)
	}
	clean, report := Check(text, mode)
	if !report.Valid() {
		return fmt.Errorf("fallback for mode %q fails validation: %v", mode, report.Failed)
	}
	fallbacks[mode] = clean
	return nil
}
