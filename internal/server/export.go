package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/obratech/obras-tracker/gen/proto/obras/v1"
	"github.com/obratech/obras-tracker/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportStageMaterials(ctx context.Context, req *v1.ExportStageMaterialsRequest) (*v1.ExportStageMaterialsResponse, error) {
	stageID, err := parseUUIDField(req.GetStageId(), "stage_id")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportStageMaterialsXLSX(ctx, stageID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "stage_id", stageID, "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &v1.ExportStageMaterialsResponse{Xlsx: xlsx}, nil
}
