package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold lower-cases s with Unicode full case mapping. A new Caser is built per
// call because cases.Caser is not safe for concurrent use.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ContainsFold reports whether the already-folded term occurs in Fold(s).
func ContainsFold(s, foldedTerm string) bool {
	return strings.Contains(Fold(s), foldedTerm)
}
