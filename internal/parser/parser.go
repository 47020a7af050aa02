package parser

import (
	"log/slog"
	"strings"

	"github.com/obratech/obras-tracker/constants"
	"github.com/obratech/obras-tracker/internal/entity"
)

// Parser converts raw extracted text into candidate line items. It never
// fails: the worst case is an empty slice, which the pipeline reports as
// "no items found" rather than an error.
type Parser struct {
	logger     *slog.Logger
	strategies []strategy
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		logger:     logger,
		strategies: strategyChain(),
	}
}

// Parse runs the strategy chain in order and returns the cleaned items of
// the first strategy that yields any. Table detection happens here so the
// strict strategy knows where data rows begin.
func (p *Parser) Parse(text string) []entity.CandidateItem {
	offset, hasTable := DetectTable(text)
	if hasTable {
		p.logger.Debug("table header detected", "data_offset", offset)
	}

	for _, s := range p.strategies {
		raw := s.fn(text, offset, hasTable)
		items := cleanItems(raw)
		if len(items) > 0 {
			p.logger.Info("parse strategy succeeded",
				"strategy", s.name, "raw_items", len(raw), "items", len(items))
			return items
		}
		p.logger.Debug("parse strategy yielded nothing", "strategy", s.name)
	}
	return nil
}

// cleanItems applies the normalization shared by all strategies: collapse
// whitespace, strip code prefixes, trim boundary punctuation, reject noise
// descriptions, default missing fields, and drop exact duplicates
// (case-insensitive) keeping the first occurrence.
func cleanItems(raw []entity.CandidateItem) []entity.CandidateItem {
	seen := make(map[string]struct{}, len(raw))
	items := make([]entity.CandidateItem, 0, len(raw))
	for _, it := range raw {
		it.Description = NormalizeDescription(it.Description)
		if !ValidDescription(it.Description) {
			continue
		}
		if it.Unit == "" {
			it.Unit = constants.DefaultUnit
		}
		if it.Quantity <= 0 {
			it.Quantity = 1
		}
		if it.UnitPrice <= 0 {
			it.UnitPrice = entity.PriceUnknown
		}

		key := strings.ToLower(it.Description)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, it)
	}
	return items
}
