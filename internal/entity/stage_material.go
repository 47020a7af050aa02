package entity

import (
	"time"

	"github.com/google/uuid"
)

// StageMaterial associates a catalog material with a project stage.
// At most one row exists per (StageID, MaterialID) pair; repeated ingestion
// of the same material updates the row instead of duplicating it.
type StageMaterial struct {
	ID           uuid.UUID `json:"id"`
	StageID      uuid.UUID `json:"stage_id"`
	ProjectID    uuid.UUID `json:"project_id"`
	MaterialID   uuid.UUID `json:"material_id"`
	Quantity     float64   `json:"quantity"`
	TotalValue   float64   `json:"total_value"`
	PurchaseDate time.Time `json:"purchase_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
