package vardiff

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Similarity scores how close variant is to base as a value in [0, 1],
// where 1 means identical text. The score is a normalized Levenshtein
// distance over the character-level diff, so it tracks small in-word edits
// that the word diff reports as a full remove/add pair. Two empty strings
// score 1.
func Similarity(base, variant string) float64 {
	if base == variant {
		return 1
	}

	longest := utf8.RuneCountInString(base)
	if n := utf8.RuneCountInString(variant); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(base, variant, false)
	distance := dmp.DiffLevenshtein(diffs)

	return 1 - float64(distance)/float64(longest)
}
