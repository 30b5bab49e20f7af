// Package speech wraps the outbound text-to-speech call. Synthesis is
// best-effort: any failure means the response ships text-only, never a
// failed request.
package speech

import (
	"context"

	"shenurtures/pkg/response"
)

// MaxInputRunes caps synthesis input; longer text is truncated before the
// provider call.
const MaxInputRunes = 1000

// Result is one synthesized utterance.
type Result struct {
	Audio    []byte
	MimeType string
	Voice    string
}

// Synthesizer produces audio for final response text using a voice profile.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, profile Profile) (*Result, error)
	Ready() bool
}

// Profile names a voice configuration. The list is small and fixed; one
// profile is reserved per mode.
type Profile struct {
	Name  string `json:"name"`
	Voice string `json:"voice"`
	Style string `json:"style"`
}

var Profiles = []Profile{
	{Name: "Nurture", Voice: "Aoede", Style: "a warm, friendly health educator speaking clearly and at an easy pace"},
	{Name: "Care", Voice: "Kore", Style: "a calm, reassuring health educator speaking gently and without rushing"},
}

// ProfileFor maps a mode to its reserved voice profile.
func ProfileFor(mode response.Mode) Profile {
	if mode == response.Symptom {
		return Profiles[1]
	}
	return Profiles[0]
}
