package entity

// ItemError records a per-item resolution or linkage failure, keyed by the
// original candidate description for manual follow-up.
type ItemError struct {
	ItemDescription string `json:"item_description"`
	ErrorMessage    string `json:"error_message"`
}

// ResolutionAction tells whether a candidate matched an existing catalog
// material or created a new one.
type ResolutionAction string

const (
	ResolutionMatched ResolutionAction = "matched"
	ResolutionCreated ResolutionAction = "created"
)

// IngestResult is the contract returned to the caller of one pipeline run.
// Success is false whenever Errors is non-empty, even with partial progress.
type IngestResult struct {
	Success      bool        `json:"success"`
	NoItemsFound bool        `json:"no_items_found"`
	ItemsFound   int         `json:"items_found"`
	CreatedCount int         `json:"created_count"`
	UpdatedCount int         `json:"updated_count"`
	Errors       []ItemError `json:"errors"`
	Supplier     *Supplier   `json:"supplier,omitempty"`
	DocumentURL  string      `json:"document_url,omitempty"`
}
