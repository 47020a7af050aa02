package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/obratech/obras-tracker/internal/textutil"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	// leading ordinal or code followed by a dash/dot separator: "12 - ", "003. "
	reCodePrefix = regexp.MustCompile(`^\d+\s*[-–.]\s*`)
	reHasLetter  = regexp.MustCompile(`\p{L}`)
	reHasDigit   = regexp.MustCompile(`[0-9]`)

	// A decimal-looking token: "1.234,56", "30.98", "45", "0,5".
	reDecimalToken = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+(?:,\d+)?$|^\d+(?:[.,]\d+)?$`)

	// Footer/header noise that must never become a line item.
	noisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^total\b`),
		regexp.MustCompile(`\btotal\s*:`),
		regexp.MustCompile(`^sub-?total\b`),
		regexp.MustCompile(`\bobservacoes\b|\bobservacao\b`),
		regexp.MustCompile(`\bpag(?:ina)?\.?\s*\d+\s*/\s*\d+`),
		regexp.MustCompile(`^\d+\s*/\s*\d+$`),
		regexp.MustCompile(`\bcnpj\b`),
		regexp.MustCompile(`\bfone\b|\btel\.?\s*[:.]`),
		regexp.MustCompile(`@`),
	}

	// Markers that terminate a line-item table.
	tableEndPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^total\b`),
		regexp.MustCompile(`\bobservacoes\b|\bobservacao\b`),
		regexp.MustCompile(`\bpag(?:ina)?\.?\s*\d+\s*/\s*\d+`),
		regexp.MustCompile(`^\d+\s*/\s*\d+$`),
	}
)

// NormalizeDescription collapses whitespace runs, strips a leading
// ordinal/code-and-dash prefix, and trims non-word characters at the
// boundaries. Punctuation inside the description is preserved for display.
func NormalizeDescription(s string) string {
	s = reWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
	s = reCodePrefix.ReplaceAllString(s, "")
	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return s
}

// ValidDescription rejects OCR noise: fewer than 5 characters or no
// alphabetic content.
func ValidDescription(s string) bool {
	return utf8.RuneCountInString(s) >= 5 && reHasLetter.MatchString(s)
}

// IsNoiseLine reports whether a line is footer/header noise (totals, page
// markers, contact info). Matching is case- and accent-insensitive.
func IsNoiseLine(line string) bool {
	key := textutil.FoldKey(strings.TrimSpace(line))
	for _, re := range noisePatterns {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

// IsTableEnd reports whether a line marks the end of a line-item table.
func IsTableEnd(line string) bool {
	key := textutil.FoldKey(strings.TrimSpace(line))
	for _, re := range tableEndPatterns {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

// IsDecimalToken reports whether tok looks like a quantity or money value,
// in either Brazilian ("1.234,56") or plain ("30.98") notation.
func IsDecimalToken(tok string) bool {
	return reDecimalToken.MatchString(tok)
}

// ParseDecimal converts a decimal-looking token to a float64. Thousand
// separators are dropped and a decimal comma becomes a decimal point.
func ParseDecimal(tok string) (float64, bool) {
	tok = strings.TrimSpace(strings.TrimPrefix(tok, "R$"))
	if tok == "" || !reDecimalToken.MatchString(tok) {
		return 0, false
	}
	if strings.Contains(tok, ",") {
		// "1.234,56" -> "1234.56"; "0,5" -> "0.5"
		tok = strings.ReplaceAll(tok, ".", "")
		tok = strings.ReplaceAll(tok, ",", ".")
	} else if reGrouped.MatchString(tok) {
		// "1.234" / "1.234.567" are thousand-grouped integers in
		// Brazilian notation; "30.98" stays a plain decimal.
		tok = strings.ReplaceAll(tok, ".", "")
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var reGrouped = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+$`)

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func isIntegerToken(s string) bool {
	return isAllDigits(s)
}
