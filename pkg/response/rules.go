package response

// Rule names reported by Validate.
const (
	RuleOpening   = "opening_phrase"
	RuleClosing   = "closing_phrase"
	RuleWordCount = "word_count"
	RuleMarkers   = "forbidden_markers"
)

// Rules is the structural contract a sanitized text must meet for a mode.
type Rules struct {
	// Opening is matched case-sensitively against the literal start of the
	// trimmed text.
	Opening string

	// Closings is the accepted set of healthcare-referral phrases; at least
	// one must appear anywhere in the text, case-insensitively.
	Closings []string

	// Inclusive word-count band, whitespace-split tokens.
	MinWords int
	MaxWords int

	// Markers that must not survive sanitization. CheckMarkers keeps the
	// rule as a backstop even though the sanitizer runs first.
	Markers      []string
	CheckMarkers bool
}

var referralPhrases = []string{
	"healthcare provider",
	"medical professional",
	"doctor",
	"consult",
}

var forbiddenMarkers = []string{"*", "•", "1.", "2.", "3."}

var ruleSets = map[Mode]Rules{
	General: {
		Opening:      "I understand",
		Closings:     referralPhrases,
		MinWords:     50,
		MaxWords:     150,
		Markers:      forbiddenMarkers,
		CheckMarkers: true,
	},
	Symptom: {
		Opening:      "Thank you for sharing",
		Closings:     referralPhrases,
		MinWords:     80,
		MaxWords:     220,
		Markers:      forbiddenMarkers,
		CheckMarkers: true,
	},
}

// RulesFor returns the rule set for a mode.
func RulesFor(mode Mode) Rules {
	return ruleSets[mode]
}
