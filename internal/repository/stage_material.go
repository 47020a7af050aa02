package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/gen/ent"
	entlink "github.com/obratech/obras-tracker/gen/ent/stagematerial"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/utils"
)

type StageMaterialRepository interface {
	// ListByStage is the one batch read the linkage stage performs per
	// pipeline run.
	ListByStage(ctx context.Context, stageID uuid.UUID) ([]*entity.StageMaterial, error)
	Insert(ctx context.Context, link *entity.StageMaterial) (*entity.StageMaterial, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity, totalValue float64) error
}

type stageMaterialRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStageMaterialRepository(client *ent.Client, logger *slog.Logger) StageMaterialRepository {
	return &stageMaterialRepository{
		client: client,
		logger: logger,
	}
}

func (r *stageMaterialRepository) ListByStage(ctx context.Context, stageID uuid.UUID) ([]*entity.StageMaterial, error) {
	rows, err := r.client.StageMaterial.Query().
		Where(entlink.StageID(stageID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list stage materials", "stage_id", stageID, "error", err)
		return nil, err
	}

	result := make([]*entity.StageMaterial, len(rows))
	for i, row := range rows {
		result[i] = utils.ToStageMaterial(row)
	}
	return result, nil
}

func (r *stageMaterialRepository) Insert(ctx context.Context, link *entity.StageMaterial) (*entity.StageMaterial, error) {
	row, err := r.client.StageMaterial.Create().
		SetStageID(link.StageID).
		SetProjectID(link.ProjectID).
		SetMaterialID(link.MaterialID).
		SetQuantity(link.Quantity).
		SetTotalValue(link.TotalValue).
		SetPurchaseDate(link.PurchaseDate).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert stage material link",
			"stage_id", link.StageID, "material_id", link.MaterialID, "error", err)
		return nil, err
	}
	return utils.ToStageMaterial(row), nil
}

func (r *stageMaterialRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity, totalValue float64) error {
	err := r.client.StageMaterial.UpdateOneID(id).
		SetQuantity(quantity).
		SetTotalValue(totalValue).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update stage material link", "link_id", id, "error", err)
	}
	return err
}
