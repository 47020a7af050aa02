package entity

// PriceUnknown marks a parsed item whose line carried no price token.
// It distinguishes "item found, price unreadable" from the absence of an
// item; callers must not treat it as a real price.
const PriceUnknown = 0.01

// RawDocument is the ephemeral input to one ingestion call.
type RawDocument struct {
	Bytes       []byte
	ContentType string
	Filename    string
}

// CandidateItem is a provisionally parsed line item, produced by the parser
// and consumed by the resolution engine.
type CandidateItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
}

// HasKnownPrice reports whether the candidate carries a real parsed price.
func (c CandidateItem) HasKnownPrice() bool {
	return c.UnitPrice != PriceUnknown
}
