// Package catalog holds the closed set of symptom codes the checklist UI
// can submit, with human-readable labels and category groupings.
package catalog

import "strings"

type Symptom struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type Category struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Symptoms []Symptom `json:"symptoms"`
}

var categories = []Category{
	{
		ID:    "menstrual",
		Label: "Menstrual Health",
		Symptoms: []Symptom{
			{Code: "irregular_periods", Label: "irregular or unpredictable periods"},
			{Code: "missed_periods", Label: "missed periods"},
			{Code: "heavy_periods", Label: "unusually heavy periods"},
			{Code: "painful_periods", Label: "painful period cramps"},
			{Code: "spotting", Label: "spotting between periods"},
		},
	},
	{
		ID:    "physical",
		Label: "Physical Changes",
		Symptoms: []Symptom{
			{Code: "acne", Label: "persistent acne"},
			{Code: "weight_gain", Label: "unexplained weight gain"},
			{Code: "hair_loss", Label: "hair thinning or hair loss"},
			{Code: "excess_hair", Label: "excess facial or body hair"},
			{Code: "bloating", Label: "frequent bloating"},
		},
	},
	{
		ID:    "energy_mood",
		Label: "Energy & Mood",
		Symptoms: []Symptom{
			{Code: "fatigue", Label: "constant tiredness or fatigue"},
			{Code: "mood_swings", Label: "mood swings"},
			{Code: "anxiety", Label: "increased anxiety"},
			{Code: "sleep_problems", Label: "trouble sleeping"},
		},
	},
	{
		ID:    "other",
		Label: "Other",
		Symptoms: []Symptom{
			{Code: "headaches", Label: "frequent headaches"},
			{Code: "hot_flashes", Label: "hot flashes"},
			{Code: "cravings", Label: "strong sugar cravings"},
			{Code: "low_libido", Label: "low libido"},
		},
	},
}

var byCode = func() map[string]Symptom {
	m := make(map[string]Symptom)
	for _, cat := range categories {
		for _, s := range cat.Symptoms {
			m[s.Code] = s
		}
	}
	return m
}()

// Grouped returns the catalog in its category grouping for the checklist UI.
func Grouped() []Category {
	return categories
}

// Describe returns the human-readable label for a code.
func Describe(code string) (string, bool) {
	s, ok := byCode[strings.TrimSpace(code)]
	return s.Label, ok
}

// Filter keeps only known codes, order-preserving and deduplicated.
// Unknown codes are dropped silently.
func Filter(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if _, ok := byCode[c]; !ok {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Labels maps codes to their labels, dropping unknown codes.
func Labels(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range Filter(codes) {
		out = append(out, byCode[c].Label)
	}
	return out
}
