package entity

import (
	"time"

	"github.com/google/uuid"
)

// Material represents a catalog material for data transfer between layers.
// Uniqueness of (Name, SupplierID) is guarded by the resolution engine, not
// by the store.
type Material struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	Unit          string    `json:"unit"`
	UnitPrice     float64   `json:"unit_price"`
	StockQuantity float64   `json:"stock_quantity"`
	OwnerID       uuid.UUID `json:"owner_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
