package entity

import (
	"time"

	"github.com/google/uuid"
)

// BudgetDocument is the audit record for an uploaded vendor budget/quote.
type BudgetDocument struct {
	ID          uuid.UUID `json:"id"`
	SupplierID  uuid.UUID `json:"supplier_id"`
	ProjectID   uuid.UUID `json:"project_id"`
	StageID     uuid.UUID `json:"stage_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	ContentHash []byte    `json:"content_hash"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// IngestJob tracks one pipeline run over a budget document.
type IngestJob struct {
	ID           uuid.UUID  `json:"id"`
	DocumentID   uuid.UUID  `json:"document_id"`
	Status       string     `json:"status"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	OCRText      *string    `json:"ocr_text,omitempty"`
	ItemsFound   int        `json:"items_found"`
	CreatedCount int        `json:"created_count"`
	UpdatedCount int        `json:"updated_count"`
	FailedCount  int        `json:"failed_count"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}
