package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shenurtures/pkg/response"
)

func TestGeneralTruncatesLongQuestions(t *testing.T) {
	long := strings.Repeat("a", 600)
	system, user := General(long)

	assert.Equal(t, System(response.General), system)
	assert.Equal(t, 500, utf8.RuneCountInString(user))
	assert.Equal(t, long[:500], user)
}

func TestGeneralKeepsShortQuestions(t *testing.T) {
	_, user := General("  What is PCOS?  ")
	assert.Equal(t, "What is PCOS?", user)
}

func TestSymptomsJoinsLabelsNaturally(t *testing.T) {
	_, one := Symptoms([]string{"persistent acne"})
	assert.Contains(t, one, "experiencing the following: persistent acne.")

	_, two := Symptoms([]string{"persistent acne", "mood swings"})
	assert.Contains(t, two, "persistent acne and mood swings")

	_, three := Symptoms([]string{"persistent acne", "mood swings", "constant tiredness or fatigue"})
	assert.Contains(t, three, "persistent acne, mood swings, and constant tiredness or fatigue")
}

func TestSymptomsUsesSymptomSystemPrompt(t *testing.T) {
	system, _ := Symptoms([]string{"mood swings"})
	assert.Equal(t, System(response.Symptom), system)
	assert.Contains(t, system, "Thank you for sharing")
}

func TestSystemPromptsStateTheContract(t *testing.T) {
	general := System(response.General)
	assert.Contains(t, general, `"I understand"`)
	assert.Contains(t, general, "healthcare provider")

	symptom := System(response.Symptom)
	assert.Contains(t, symptom, `"Thank you for sharing"`)
	assert.Contains(t, symptom, "consult")
}

func TestApplyOverrides(t *testing.T) {
	originalGeneral := System(response.General)
	defer func() {
		require.NoError(t, Apply(Overrides{GeneralSystem: originalGeneral}))
	}()

	require.NoError(t, Apply(Overrides{GeneralSystem: "custom system prompt"}))
	assert.Equal(t, "custom system prompt", System(response.General))

	// Empty fields keep existing text.
	require.NoError(t, Apply(Overrides{}))
	assert.Equal(t, "custom system prompt", System(response.General))

	// A fallback override that breaks the rules is rejected.
	err := Apply(Overrides{GeneralFallback: "not compliant"})
	assert.Error(t, err)
}
