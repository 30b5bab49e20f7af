package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeStripsMarkdown(t *testing.T) {
	in := "**I understand** your concern about *hormones*.\n\n- First point\n1. Second point\n## Heading\nDone."
	got := Sanitize(in)

	assert.Equal(t, "I understand your concern about hormones. First point Second point Heading Done.", got)
	assert.NotContains(t, got, "*")
	assert.NotContains(t, got, "\n")
}

func TestSanitizeBulletGlyphAndSpacing(t *testing.T) {
	in := "• One thing\r\n•   Another   thing\t here"
	got := Sanitize(in)
	assert.Equal(t, "One thing Another thing here", got)
}

func TestSanitizeTrimsLeadingPunctuation(t *testing.T) {
	assert.Equal(t, "I understand", Sanitize(": I understand"))
	assert.Equal(t, "I understand", Sanitize("— I understand"))
}

func TestSanitizeRemovesExposedMarkers(t *testing.T) {
	// Stripping one marker can uncover another underneath it.
	assert.Equal(t, "hello everyone", Sanitize("*1. hello everyone"))
	assert.Equal(t, "dotted then numbered", Sanitize(". 1. dotted then numbered"))
	assert.Equal(t, "stacked markers here", Sanitize("-2) stacked markers here"))
}

func TestSanitizeIdempotent(t *testing.T) {
	samples := []string{
		"",
		"plain sentence with no noise",
		"**bold** and *italic* and __under__",
		"- bullet one\n- bullet two\n\n3. three",
		"#### Header\n\ntext   with \t runs\r\nand returns",
		": , leading punctuation mid-sentence 1) marker",
		"• • double glyphs **",
		"*1. hello everyone",
		". 1. dotted then numbered",
		"-2) stacked markers here",
	}
	for _, s := range samples {
		once := Sanitize(s)
		twice := Sanitize(once)
		require.Equal(t, once, twice, "sanitize not idempotent for %q", s)
	}
}

func TestSanitizeNeverGrows(t *testing.T) {
	samples := []string{
		"**I understand**",
		"a\n\n\nb",
		"no changes here",
		"1. 2. 3. lists",
	}
	for _, s := range samples {
		assert.LessOrEqual(t, len(Sanitize(s)), len(s), "sanitize grew %q", s)
	}
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 3, WordCount("one two three"))
	assert.Equal(t, 3, WordCount("  one\ttwo\nthree  "))
}
