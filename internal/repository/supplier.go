package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/gen/ent"
	entsupplier "github.com/obratech/obras-tracker/gen/ent/supplier"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/utils"
)

type SupplierRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}

type supplierRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSupplierRepository(client *ent.Client, logger *slog.Logger) SupplierRepository {
	return &supplierRepository{
		client: client,
		logger: logger,
	}
}

func (r *supplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	row, err := r.client.Supplier.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get supplier", "supplier_id", id, "error", err)
		return nil, err
	}
	return utils.ToSupplier(row), nil
}

func (r *supplierRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Supplier.Query().Where(entsupplier.ID(id)).Exist(ctx)
}

func (r *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.client.Supplier.Query().Order(entsupplier.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list suppliers", "error", err)
		return nil, err
	}
	result := make([]*entity.Supplier, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSupplier(row)
	}
	return result, nil
}
