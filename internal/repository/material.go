package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/gen/ent"
	entmaterial "github.com/obratech/obras-tracker/gen/ent/material"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/utils"
)

type MaterialRepository interface {
	// ListBySupplier is the one batch read the resolution engine performs
	// per pipeline run.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Material, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Material, error)
	Create(ctx context.Context, m *entity.Material) (*entity.Material, error)
	// UpdatePrice touches only the unit price and owning user of an
	// existing material; name, unit and stock stay as they are.
	UpdatePrice(ctx context.Context, id uuid.UUID, unitPrice float64, ownerID uuid.UUID) error
}

type materialRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMaterialRepository(client *ent.Client, logger *slog.Logger) MaterialRepository {
	return &materialRepository{
		client: client,
		logger: logger,
	}
}

func (r *materialRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Material, error) {
	rows, err := r.client.Material.Query().
		Where(entmaterial.SupplierID(supplierID)).
		Order(entmaterial.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list materials", "supplier_id", supplierID, "error", err)
		return nil, err
	}

	result := make([]*entity.Material, len(rows))
	for i, row := range rows {
		result[i] = utils.ToMaterial(row)
	}
	return result, nil
}

func (r *materialRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Material, error) {
	rows, err := r.client.Material.Query().
		Where(entmaterial.IDIn(ids...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to get materials by ids", "count", len(ids), "error", err)
		return nil, err
	}

	result := make([]*entity.Material, len(rows))
	for i, row := range rows {
		result[i] = utils.ToMaterial(row)
	}
	return result, nil
}

func (r *materialRepository) Create(ctx context.Context, m *entity.Material) (*entity.Material, error) {
	row, err := r.client.Material.Create().
		SetName(m.Name).
		SetSupplierID(m.SupplierID).
		SetUnit(m.Unit).
		SetUnitPrice(m.UnitPrice).
		SetStockQuantity(m.StockQuantity).
		SetOwnerID(m.OwnerID).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create material", "name", m.Name, "supplier_id", m.SupplierID, "error", err)
		return nil, err
	}
	return utils.ToMaterial(row), nil
}

func (r *materialRepository) UpdatePrice(ctx context.Context, id uuid.UUID, unitPrice float64, ownerID uuid.UUID) error {
	err := r.client.Material.UpdateOneID(id).
		SetUnitPrice(unitPrice).
		SetOwnerID(ownerID).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update material price", "material_id", id, "error", err)
	}
	return err
}
