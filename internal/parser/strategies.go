package parser

import (
	"regexp"
	"strings"

	"github.com/obratech/obras-tracker/constants"
	"github.com/obratech/obras-tracker/internal/entity"
)

// strategy is one named matcher in the fallback chain. Strategies run in
// order; the first one that yields any usable item wins the whole run.
type strategy struct {
	name string
	fn   func(text string, tableOffset int, hasTable bool) []entity.CandidateItem
}

func strategyChain() []strategy {
	return []strategy{
		{name: "strict-table", fn: strictTableStrategy},
		{name: "loose-regex", fn: looseRegexStrategy},
		{name: "token-positional", fn: tokenPositionalStrategy},
		{name: "degenerate", fn: degenerateStrategy},
	}
}

const unitAlt = `UN|MT|KG|M2|M²|M3|M³`

// decAlt matches one decimal-looking token ("1.234,56", "30.98", "45").
const decAlt = `\d{1,3}(?:\.\d{3})+(?:,\d+)?|\d+(?:[.,]\d+)?`

var (
	// number, code, description, unit, quantity, unit price, optional total
	reLooseFull = regexp.MustCompile(`(?i)^\s*(\d+)\s+(\S+)\s+(.+?)\s+(` + unitAlt + `)\s+(` + decAlt + `)\s+(` + decAlt + `)(?:\s+(?:` + decAlt + `))?\s*$`)
	// description, unit, quantity, unit price, optional total
	reLooseUnit = regexp.MustCompile(`(?i)^\s*(?:\d+\s+)?(.+?)\s+(` + unitAlt + `)\s+(` + decAlt + `)\s+(` + decAlt + `)(?:\s+(?:` + decAlt + `))?\s*$`)
	// least specific: description followed by any two decimal numbers
	reLooseTwo = regexp.MustCompile(`(?i)^\s*(.+?)\s+(` + decAlt + `)\s+(` + decAlt + `)\s*$`)

	reMultiSpace = regexp.MustCompile(`\s{2,}`)
)

// strictTableStrategy consumes data rows below a detected header under the
// assumed schema order: item number, code, description, unit, quantity,
// unit price, total price. The description greedily absorbs tokens until a
// recognized unit token is seen.
func strictTableStrategy(text string, tableOffset int, hasTable bool) []entity.CandidateItem {
	if !hasTable {
		return nil
	}
	lines := strings.Split(text, "\n")
	if tableOffset >= len(lines) {
		return nil
	}

	var items []entity.CandidateItem
	for _, line := range lines[tableOffset:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if IsTableEnd(trimmed) && len(items) > 0 {
			break
		}
		if IsNoiseLine(trimmed) {
			continue
		}
		if item, ok := parseTableRow(trimmed); ok {
			items = append(items, item)
		}
	}
	return items
}

// parseTableRow splits a data line into columns (multi-space runs first,
// falling back to single spaces when too few fields result) and consumes
// them left-to-right. Lines not beginning with a numeric token are not
// data rows.
func parseTableRow(line string) (entity.CandidateItem, bool) {
	toks := reMultiSpace.Split(line, -1)
	if len(toks) < 4 {
		toks = strings.Fields(line)
	}
	if len(toks) < 3 || !startsWithDigit(toks[0]) || !IsDecimalToken(toks[0]) {
		return entity.CandidateItem{}, false
	}

	// item number, optionally followed by a separate code column
	i := 1
	if i < len(toks)-1 && isIntegerToken(toks[i]) && !constants.IsUnitToken(toks[i+1]) && !IsDecimalToken(toks[i+1]) {
		i++
	}

	// description absorbs tokens until a unit token appears
	unitIdx := -1
	for j := i; j < len(toks); j++ {
		if constants.IsUnitToken(toks[j]) {
			unitIdx = j
			break
		}
	}

	if unitIdx > i {
		item := entity.CandidateItem{
			Description: strings.Join(toks[i:unitIdx], " "),
			Quantity:    1,
			Unit:        constants.CanonicalUnit(toks[unitIdx]),
			UnitPrice:   entity.PriceUnknown,
		}
		rest := toks[unitIdx+1:]
		if len(rest) > 0 {
			if q, ok := ParseDecimal(rest[0]); ok && q > 0 {
				item.Quantity = q
			}
		}
		if len(rest) > 1 {
			if p, ok := ParseDecimal(rest[1]); ok && p > 0 {
				item.UnitPrice = p
			}
		}
		return item, true
	}

	// No unit column: accept the row only when quantity and unit price can
	// be read off the tail.
	if len(toks) >= 4 && IsDecimalToken(toks[len(toks)-2]) && IsDecimalToken(toks[len(toks)-1]) {
		q, okQ := ParseDecimal(toks[len(toks)-2])
		p, okP := ParseDecimal(toks[len(toks)-1])
		if okQ && okP {
			return entity.CandidateItem{
				Description: strings.Join(toks[i:len(toks)-2], " "),
				Quantity:    q,
				Unit:        constants.DefaultUnit,
				UnitPrice:   p,
			}, true
		}
	}
	return entity.CandidateItem{}, false
}

// looseRegexStrategy runs an ordered set of patterns, most specific first,
// over the whole text regardless of table detection. The first pattern that
// matches a line wins for that line.
func looseRegexStrategy(text string, _ int, _ bool) []entity.CandidateItem {
	var items []entity.CandidateItem
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || IsNoiseLine(trimmed) {
			continue
		}

		if m := reLooseFull.FindStringSubmatch(trimmed); m != nil {
			items = appendLooseItem(items, m[3], m[4], m[5], m[6])
			continue
		}
		if m := reLooseUnit.FindStringSubmatch(trimmed); m != nil {
			items = appendLooseItem(items, m[1], m[2], m[3], m[4])
			continue
		}
		if m := reLooseTwo.FindStringSubmatch(trimmed); m != nil {
			items = appendLooseItem(items, m[1], "", m[2], m[3])
		}
	}
	return items
}

func appendLooseItem(items []entity.CandidateItem, desc, unit, qtyTok, priceTok string) []entity.CandidateItem {
	item := entity.CandidateItem{
		Description: desc,
		Quantity:    1,
		Unit:        constants.DefaultUnit,
		UnitPrice:   entity.PriceUnknown,
	}
	if u := constants.CanonicalUnit(unit); u != "" {
		item.Unit = u
	}
	if q, ok := ParseDecimal(qtyTok); ok && q > 0 {
		item.Quantity = q
	}
	if p, ok := ParseDecimal(priceTok); ok && p > 0 {
		item.UnitPrice = p
	}
	return append(items, item)
}

// tokenPositionalStrategy handles lines that start with a numeric code and
// carry at least two decimal tokens but fit none of the regex shapes. When
// no unit token is present, the last two decimal tokens are assumed to be
// quantity and unit price, in that order.
func tokenPositionalStrategy(text string, _ int, _ bool) []entity.CandidateItem {
	var items []entity.CandidateItem
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || IsNoiseLine(trimmed) || !startsWithDigit(trimmed) {
			continue
		}

		toks := strings.Fields(trimmed)
		if len(toks) < 4 {
			continue
		}

		var decimalIdx []int
		for j, tok := range toks {
			if IsDecimalToken(tok) {
				decimalIdx = append(decimalIdx, j)
			}
		}
		// leading code plus at least quantity and price
		if len(decimalIdx) < 3 || decimalIdx[0] != 0 {
			continue
		}

		unitIdx := -1
		for j := 1; j < len(toks); j++ {
			if constants.IsUnitToken(toks[j]) {
				unitIdx = j
				break
			}
		}

		if unitIdx > 1 {
			item := entity.CandidateItem{
				Description: strings.Join(toks[1:unitIdx], " "),
				Quantity:    1,
				Unit:        constants.CanonicalUnit(toks[unitIdx]),
				UnitPrice:   entity.PriceUnknown,
			}
			var tail []float64
			for j := unitIdx + 1; j < len(toks) && len(tail) < 2; j++ {
				if v, ok := ParseDecimal(toks[j]); ok {
					tail = append(tail, v)
				}
			}
			if len(tail) > 0 && tail[0] > 0 {
				item.Quantity = tail[0]
			}
			if len(tail) > 1 && tail[1] > 0 {
				item.UnitPrice = tail[1]
			}
			items = append(items, item)
			continue
		}

		qIdx := decimalIdx[len(decimalIdx)-2]
		pIdx := decimalIdx[len(decimalIdx)-1]
		if qIdx <= 1 {
			continue
		}
		q, okQ := ParseDecimal(toks[qIdx])
		p, okP := ParseDecimal(toks[pIdx])
		if !okQ || !okP {
			continue
		}
		items = append(items, entity.CandidateItem{
			Description: strings.Join(toks[1:qIdx], " "),
			Quantity:    q,
			Unit:        constants.DefaultUnit,
			UnitPrice:   p,
		})
	}
	return items
}

// degenerateStrategy is the last resort: every sufficiently long line with
// both digits and letters becomes a material with quantity 1, the generic
// unit, and the unknown-price sentinel.
func degenerateStrategy(text string, _ int, _ bool) []entity.CandidateItem {
	var items []entity.CandidateItem
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || IsNoiseLine(trimmed) {
			continue
		}
		if len([]rune(trimmed)) < 10 {
			continue
		}
		if !reHasLetter.MatchString(trimmed) || !reHasDigit.MatchString(trimmed) {
			continue
		}
		items = append(items, entity.CandidateItem{
			Description: trimmed,
			Quantity:    1,
			Unit:        constants.DefaultUnit,
			UnitPrice:   entity.PriceUnknown,
		})
	}
	return items
}
