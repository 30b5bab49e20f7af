package utils

import (
	"strings"

	"github.com/aryann/difflib"
)

// RemovedWords reports the whitespace-split tokens present in before but
// absent from after, in order. Used to log what sanitization stripped.
func RemovedWords(before, after string) []string {
	recs := difflib.Diff(strings.Fields(before), strings.Fields(after))
	var out []string
	for _, r := range recs {
		if r.Delta == difflib.LeftOnly {
			out = append(out, r.Payload)
		}
	}
	return out
}
