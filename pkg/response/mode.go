// Package response shapes raw model output into the fixed form the app
// returns to the browser: it strips formatting noise, checks the result
// against per-mode structural rules, and supplies a pre-approved fallback
// text when the generated text cannot be repaired.
package response

// Mode selects which prompt template, word-count band, and required
// opening/closing phrases apply.
type Mode string

const (
	General Mode = "general"
	Symptom Mode = "symptom"
)

func (m Mode) Valid() bool {
	return m == General || m == Symptom
}
