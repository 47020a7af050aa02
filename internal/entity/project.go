package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a construction project.
type Project struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stage represents a phase of a project to which materials and costs are
// attributed. RealizedValue is the aggregate of all linked material totals
// and is recomputed after every linkage change.
type Stage struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"project_id"`
	Name          string    `json:"name"`
	BudgetedValue float64   `json:"budgeted_value"`
	RealizedValue float64   `json:"realized_value"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
