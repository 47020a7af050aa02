package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/constants"
	"github.com/obratech/obras-tracker/gen/ent"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/utils"
)

// JobCounts carries the per-run tallies persisted when a job finishes.
type JobCounts struct {
	ItemsFound   int
	CreatedCount int
	UpdatedCount int
	FailedCount  int
}

type IngestJobRepository interface {
	Start(ctx context.Context, documentID uuid.UUID, format string) (*entity.IngestJob, error)
	MarkExtractOK(ctx context.Context, id uuid.UUID, ocrText string) error
	MarkParseOK(ctx context.Context, id uuid.UUID, itemsFound int) error
	FinishSuccess(ctx context.Context, id uuid.UUID, counts JobCounts) error
	FinishFailure(ctx context.Context, id uuid.UUID, errorMessage string) error
}

type ingestJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIngestJobRepository(client *ent.Client, logger *slog.Logger) IngestJobRepository {
	return &ingestJobRepository{
		client: client,
		logger: logger,
	}
}

func (r *ingestJobRepository) Start(ctx context.Context, documentID uuid.UUID, format string) (*entity.IngestJob, error) {
	row, err := r.client.IngestJob.Create().
		SetDocumentID(documentID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start ingest job", "document_id", documentID, "error", err)
		return nil, err
	}
	return utils.ToIngestJob(row), nil
}

func (r *ingestJobRepository) MarkExtractOK(ctx context.Context, id uuid.UUID, ocrText string) error {
	err := r.client.IngestJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusExtractOK)).
		SetOcrText(ocrText).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark job extract_ok", "job_id", id, "error", err)
	}
	return err
}

func (r *ingestJobRepository) MarkParseOK(ctx context.Context, id uuid.UUID, itemsFound int) error {
	err := r.client.IngestJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusParseOK)).
		SetItemsFound(itemsFound).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark job parse_ok", "job_id", id, "error", err)
	}
	return err
}

func (r *ingestJobRepository) FinishSuccess(ctx context.Context, id uuid.UUID, counts JobCounts) error {
	err := r.client.IngestJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusDone)).
		SetItemsFound(counts.ItemsFound).
		SetCreatedCount(counts.CreatedCount).
		SetUpdatedCount(counts.UpdatedCount).
		SetFailedCount(counts.FailedCount).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to finish ingest job", "job_id", id, "error", err)
	}
	return err
}

func (r *ingestJobRepository) FinishFailure(ctx context.Context, id uuid.UUID, errorMessage string) error {
	err := r.client.IngestJob.UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(errorMessage).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark ingest job failed", "job_id", id, "error", err)
	}
	return err
}
