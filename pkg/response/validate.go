package response

import (
	"strings"

	"shenurtures/pkg/utils"
)

// Report carries the outcome of validating one sanitized text. Overall
// validity is the logical AND of all enabled rules; Failed lists the
// names of the rules that did not hold, for logging and diagnostics.
type Report struct {
	WordCount int
	Failed    []string
}

func (r Report) Valid() bool {
	return len(r.Failed) == 0
}

// Validate checks a sanitized text against a mode's rule set. It is
// deterministic and has no side effects; run Sanitize first.
func Validate(text string, rules Rules) Report {
	text = strings.TrimSpace(text)
	report := Report{WordCount: WordCount(text)}

	if !strings.HasPrefix(text, rules.Opening) {
		report.Failed = append(report.Failed, RuleOpening)
	}

	if !utils.StringContains(text, false, rules.Closings...) {
		report.Failed = append(report.Failed, RuleClosing)
	}

	if report.WordCount < rules.MinWords || report.WordCount > rules.MaxWords {
		report.Failed = append(report.Failed, RuleWordCount)
	}

	if rules.CheckMarkers && utils.StringContains(text, true, rules.Markers...) {
		report.Failed = append(report.Failed, RuleMarkers)
	}

	return report
}

// Check sanitizes then validates against the rules for mode.
func Check(raw string, mode Mode) (string, Report) {
	clean := Sanitize(raw)
	return clean, Validate(clean, RulesFor(mode))
}
