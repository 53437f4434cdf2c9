// Package textnorm normalises token text coming from document sources and
// provides the case-insensitive comparisons used by the field extractors.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Clean applies NFKC normalisation and trims surrounding whitespace.
// NFKC folds full-width digits, ligatures such as "ﬁ" and non-breaking
// spaces into their plain equivalents, so shape checks like "five ASCII
// digits" behave the same for every source.
func Clean(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// Fold returns the Unicode case-folded form of s.
// A fresh Caser is used per call since Casers are not safe for concurrent use.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsAllFold reports whether every word is within s, ignoring case.
// It returns false for an empty word list.
func ContainsAllFold(s string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	folded := Fold(s)
	for _, w := range words {
		if !strings.Contains(folded, Fold(w)) {
			return false
		}
	}
	return true
}

// HasPrefixFold reports whether s begins with prefix, ignoring case.
// Leading whitespace in s is ignored.
func HasPrefixFold(s, prefix string) bool {
	_, ok := TrimPrefixFold(s, prefix)
	return ok
}

// TrimPrefixFold removes prefix from the start of s, ignoring case, and
// returns the trimmed remainder. Leading whitespace in s is ignored.
func TrimPrefixFold(s, prefix string) (string, bool) {
	s = strings.TrimLeft(s, " \t")
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return strings.TrimSpace(s[len(prefix):]), true
}
