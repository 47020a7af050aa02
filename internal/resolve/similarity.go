package resolve

import (
	"regexp"
	"strings"

	"github.com/obratech/obras-tracker/internal/textutil"
)

// SimilarityThreshold is the minimum token-set (Jaccard) similarity for two
// material names to be considered the same catalog entry.
const SimilarityThreshold = 0.8

var (
	reNonWord    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// NormalizeName produces the comparison form of a material name: lowercase,
// accents folded, every run of non-word characters collapsed to one space.
// Replacing punctuation with spaces (instead of deleting it) keeps
// "CP-II" and "CP II" token-identical.
func NormalizeName(s string) string {
	s = textutil.FoldKey(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TokenSet splits a normalized name into its distinct whitespace-delimited
// tokens.
func TokenSet(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(normalized) {
		set[tok] = struct{}{}
	}
	return set
}

// Jaccard returns the ratio of shared tokens to total distinct tokens for
// two token sets. Two empty sets score zero, not one; an empty name must
// never match anything.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
