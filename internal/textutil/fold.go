package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents removes diacritical marks ("Página" -> "Pagina").
// OCR output for Portuguese text is inconsistent about accents, so all
// keyword matching and name comparison runs on the folded form.
func FoldAccents(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// FoldKey lowercases and folds accents; the canonical form used for
// keyword containment checks.
func FoldKey(s string) string {
	return strings.ToLower(FoldAccents(s))
}
