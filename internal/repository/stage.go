package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/gen/ent"
	entstage "github.com/obratech/obras-tracker/gen/ent/stage"
	entlink "github.com/obratech/obras-tracker/gen/ent/stagematerial"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/utils"
)

type StageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Stage, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// RecomputeRealizedValue re-derives the stage's realized-value
	// aggregate from its linked materials and persists it.
	RecomputeRealizedValue(ctx context.Context, stageID uuid.UUID) (float64, error)
}

type stageRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStageRepository(client *ent.Client, logger *slog.Logger) StageRepository {
	return &stageRepository{
		client: client,
		logger: logger,
	}
}

func (r *stageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Stage, error) {
	row, err := r.client.Stage.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get stage", "stage_id", id, "error", err)
		return nil, err
	}
	return utils.ToStage(row), nil
}

func (r *stageRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Stage.Query().Where(entstage.ID(id)).Exist(ctx)
}

func (r *stageRepository) RecomputeRealizedValue(ctx context.Context, stageID uuid.UUID) (float64, error) {
	var agg []struct {
		Sum float64 `json:"sum"`
	}
	err := r.client.StageMaterial.Query().
		Where(entlink.StageID(stageID)).
		Aggregate(ent.Sum(entlink.FieldTotalValue)).
		Scan(ctx, &agg)
	if err != nil {
		r.logger.Error("failed to sum stage material totals", "stage_id", stageID, "error", err)
		return 0, err
	}

	total := 0.0
	if len(agg) > 0 {
		total = agg[0].Sum
	}

	if err := r.client.Stage.UpdateOneID(stageID).SetRealizedValue(total).Exec(ctx); err != nil {
		r.logger.Error("failed to persist stage realized value", "stage_id", stageID, "error", err)
		return 0, err
	}
	return total, nil
}
