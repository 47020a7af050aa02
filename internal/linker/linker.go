package linker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/repository"
	"github.com/obratech/obras-tracker/internal/resolve"
)

type Linker interface {
	// LinkAll upserts one stage-material link per resolved item and then
	// recomputes the stage's realized-value aggregate. Re-running the same
	// document replaces quantities instead of accumulating them. Per-item
	// failures are collected; only the batch read and the final recompute
	// are fatal.
	LinkAll(ctx context.Context, outcomes []resolve.Outcome, stageID, projectID uuid.UUID) ([]entity.ItemError, error)
}

type linker struct {
	links  repository.StageMaterialRepository
	stages repository.StageRepository
	logger *slog.Logger
}

func NewLinker(links repository.StageMaterialRepository, stages repository.StageRepository, logger *slog.Logger) Linker {
	return &linker{
		links:  links,
		stages: stages,
		logger: logger,
	}
}

func (l *linker) LinkAll(ctx context.Context, outcomes []resolve.Outcome, stageID, projectID uuid.UUID) ([]entity.ItemError, error) {
	existing, err := l.links.ListByStage(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("loading stage links: %w", err)
	}
	byMaterial := make(map[uuid.UUID]*entity.StageMaterial, len(existing))
	for _, link := range existing {
		byMaterial[link.MaterialID] = link
	}

	var itemErrors []entity.ItemError
	for _, out := range outcomes {
		if err := l.linkOne(ctx, out, byMaterial, stageID, projectID); err != nil {
			l.logger.Warn("failed to link item to stage",
				"description", out.Candidate.Description, "stage_id", stageID, "error", err)
			itemErrors = append(itemErrors, entity.ItemError{
				ItemDescription: out.Candidate.Description,
				ErrorMessage:    err.Error(),
			})
		}
	}

	total, err := l.stages.RecomputeRealizedValue(ctx, stageID)
	if err != nil {
		return itemErrors, fmt.Errorf("recomputing stage realized value: %w", err)
	}
	l.logger.Info("stage realized value recomputed", "stage_id", stageID, "realized_value", total)

	return itemErrors, nil
}

func (l *linker) linkOne(ctx context.Context, out resolve.Outcome, byMaterial map[uuid.UUID]*entity.StageMaterial, stageID, projectID uuid.UUID) error {
	quantity := out.Candidate.Quantity
	totalValue := quantity * out.Material.UnitPrice

	if existing, ok := byMaterial[out.Material.ID]; ok {
		if err := l.links.UpdateQuantity(ctx, existing.ID, quantity, totalValue); err != nil {
			return fmt.Errorf("updating link %s: %w", existing.ID, err)
		}
		existing.Quantity = quantity
		existing.TotalValue = totalValue
		return nil
	}

	created, err := l.links.Insert(ctx, &entity.StageMaterial{
		StageID:      stageID,
		ProjectID:    projectID,
		MaterialID:   out.Material.ID,
		Quantity:     quantity,
		TotalValue:   totalValue,
		PurchaseDate: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("inserting link for material %s: %w", out.Material.ID, err)
	}
	byMaterial[out.Material.ID] = created
	return nil
}
