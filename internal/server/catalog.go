package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/obratech/obras-tracker/gen/proto/obras/v1"
	"github.com/obratech/obras-tracker/internal/repository"
	"github.com/obratech/obras-tracker/internal/utils"
)

type CatalogService struct {
	v1.UnimplementedCatalogServiceServer
	suppliers repository.SupplierRepository
	materials repository.MaterialRepository
	stages    repository.StageRepository
	links     repository.StageMaterialRepository
	logger    *slog.Logger
}

func NewCatalogService(
	suppliers repository.SupplierRepository,
	materials repository.MaterialRepository,
	stages repository.StageRepository,
	links repository.StageMaterialRepository,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		suppliers: suppliers,
		materials: materials,
		stages:    stages,
		links:     links,
		logger:    logger,
	}
}

func (s *CatalogService) ListSuppliers(ctx context.Context, _ *v1.ListSuppliersRequest) (*v1.ListSuppliersResponse, error) {
	suppliers, err := s.suppliers.List(ctx)
	if err != nil {
		s.logger.Error("list suppliers failed", "error", err)
		return nil, status.Error(codes.Internal, "list suppliers failed")
	}
	out := make([]*v1.Supplier, 0, len(suppliers))
	for _, sp := range suppliers {
		out = append(out, utils.ToPBSupplier(sp))
	}
	return &v1.ListSuppliersResponse{Suppliers: out}, nil
}

func (s *CatalogService) ListMaterials(ctx context.Context, req *v1.ListMaterialsRequest) (*v1.ListMaterialsResponse, error) {
	supplierID, err := parseUUIDField(req.GetSupplierId(), "supplier_id")
	if err != nil {
		return nil, err
	}
	materials, err := s.materials.ListBySupplier(ctx, supplierID)
	if err != nil {
		s.logger.Error("list materials failed", "supplier_id", supplierID, "error", err)
		return nil, status.Error(codes.Internal, "list materials failed")
	}
	out := make([]*v1.Material, 0, len(materials))
	for _, m := range materials {
		out = append(out, utils.ToPBMaterial(m))
	}
	return &v1.ListMaterialsResponse{Materials: out}, nil
}

func (s *CatalogService) ListStageMaterials(ctx context.Context, req *v1.ListStageMaterialsRequest) (*v1.ListStageMaterialsResponse, error) {
	stageID, err := parseUUIDField(req.GetStageId(), "stage_id")
	if err != nil {
		return nil, err
	}
	stage, err := s.stages.GetByID(ctx, stageID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "stage not found")
	}
	links, err := s.links.ListByStage(ctx, stageID)
	if err != nil {
		s.logger.Error("list stage materials failed", "stage_id", stageID, "error", err)
		return nil, status.Error(codes.Internal, "list stage materials failed")
	}
	out := make([]*v1.StageMaterial, 0, len(links))
	for _, l := range links {
		out = append(out, utils.ToPBStageMaterial(l))
	}
	return &v1.ListStageMaterialsResponse{
		StageMaterials: out,
		RealizedValue:  stage.RealizedValue,
	}, nil
}
