package constants

import "strings"

// DefaultUnit is assumed when a parsed line carries no recognizable unit.
const DefaultUnit = "UN"

// MaterialUnits holds the unit tokens recognized in budget tables, keyed by
// their canonical form. OCR output for superscripts is unreliable, so both
// "M2"/"M²" spellings map to the same unit.
var MaterialUnits = map[string]string{
	"UN": "UN",
	"MT": "MT",
	"KG": "KG",
	"M2": "M2",
	"M²": "M2",
	"M3": "M3",
	"M³": "M3",
}

// CanonicalUnit returns the canonical unit for a token, or "" when the token
// is not a unit.
func CanonicalUnit(tok string) string {
	return MaterialUnits[strings.ToUpper(strings.TrimSpace(tok))]
}

// IsUnitToken reports whether tok is a recognized unit token.
func IsUnitToken(tok string) bool {
	return CanonicalUnit(tok) != ""
}
