package parser

import (
	"strings"

	"github.com/obratech/obras-tracker/internal/textutil"
)

// headerTokenGroups lists per-column synonym prefixes a header line must
// contain simultaneously (item, code, description, unit, quantity).
var headerTokenGroups = [][]string{
	{"item"},
	{"cod", "ref"},
	{"descr", "produto", "material"},
	{"un", "und", "unid"},
	{"quant", "qtd", "qtde"},
}

// DetectTable scans lines top-to-bottom for a header indicating a line-item
// table and returns the index where data rows begin. ok is false when no
// header qualifies; that is a valid outcome, not an error, and tells the
// parser to use its non-tabular strategies.
func DetectTable(text string) (offset int, ok bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if isHeaderLine(line) {
			return i + 1, true
		}
	}
	return 0, false
}

func isHeaderLine(line string) bool {
	tokens := strings.Fields(textutil.FoldKey(line))
	if len(tokens) < len(headerTokenGroups) {
		return false
	}
	for _, group := range headerTokenGroups {
		if !anyTokenHasPrefix(tokens, group) {
			return false
		}
	}
	return true
}

func anyTokenHasPrefix(tokens, prefixes []string) bool {
	for _, tok := range tokens {
		tok = strings.Trim(tok, ".:;")
		for _, p := range prefixes {
			if strings.HasPrefix(tok, p) {
				return true
			}
		}
	}
	return false
}
