package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/obratech/obras-tracker/gen/proto/obras/v1"
	"github.com/obratech/obras-tracker/internal/async"
	"github.com/obratech/obras-tracker/internal/common"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/pipeline"
	"github.com/obratech/obras-tracker/internal/utils"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	processor *pipeline.Processor
	queue     async.Queue
	logger    *slog.Logger
}

func NewIngestionService(proc *pipeline.Processor, queue async.Queue, logger *slog.Logger) *IngestionService {
	return &IngestionService{
		processor: proc,
		queue:     queue,
		logger:    logger,
	}
}

// IngestBudget implements v1.IngestionServiceServer
func (s *IngestionService) IngestBudget(ctx context.Context, req *v1.IngestBudgetRequest) (*v1.IngestBudgetResponse, error) {
	pr, err := s.buildRequest(req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting budget ingest",
		"supplier_id", pr.SupplierID, "stage_id", pr.StageID, "filename", pr.Document.Filename)
	result, err := s.processor.ProcessDocument(ctx, pr)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnsupportedFormat):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, common.ErrExtractionFailed):
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		default:
			s.logger.Error("budget ingest failed", "filename", pr.Document.Filename, "error", err)
			return nil, status.Error(codes.Internal, "budget ingest failed")
		}
	}

	return &v1.IngestBudgetResponse{Result: utils.ToPBIngestResult(result)}, nil
}

// EnqueueBudget implements v1.IngestionServiceServer
func (s *IngestionService) EnqueueBudget(ctx context.Context, req *v1.IngestBudgetRequest) (*v1.EnqueueBudgetResponse, error) {
	pr, err := s.buildRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.queue.Enqueue(ctx, async.Job{Request: pr, SubmittedAt: time.Now()}); err != nil {
		s.logger.Error("failed to enqueue budget", "filename", pr.Document.Filename, "error", err)
		return nil, status.Error(codes.Internal, "failed to enqueue budget")
	}
	return &v1.EnqueueBudgetResponse{Queued: true}, nil
}

func (s *IngestionService) buildRequest(req *v1.IngestBudgetRequest) (pipeline.Request, error) {
	var out pipeline.Request

	supplierID, err := parseUUIDField(req.GetSupplierId(), "supplier_id")
	if err != nil {
		return out, err
	}
	projectID, err := parseUUIDField(req.GetProjectId(), "project_id")
	if err != nil {
		return out, err
	}
	stageID, err := parseUUIDField(req.GetStageId(), "stage_id")
	if err != nil {
		return out, err
	}
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return out, err
	}
	v := common.NewValidator()
	v.Field("content", req.GetContent(), common.Required)
	v.Field("filename", req.GetFilename(), func(field string, value interface{}) *common.ValidationError {
		return common.MaxLength(field, value, 255)
	})
	if err := common.ValidateAndReturnError(v); err != nil {
		return out, err
	}

	out = pipeline.Request{
		Document: entity.RawDocument{
			Bytes:       req.GetContent(),
			ContentType: req.GetContentType(),
			Filename:    strings.TrimSpace(req.GetFilename()),
		},
		SupplierID: supplierID,
		ProjectID:  projectID,
		StageID:    stageID,
		OwnerID:    ownerID,
	}
	return out, nil
}

func parseUUIDField(value, field string) (uuid.UUID, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
