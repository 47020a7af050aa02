package export

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/obratech/obras-tracker/internal/entity"
)

type stubStageRepo struct {
	stage *entity.Stage
}

func (s *stubStageRepo) GetByID(context.Context, uuid.UUID) (*entity.Stage, error) {
	return s.stage, nil
}
func (s *stubStageRepo) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (s *stubStageRepo) RecomputeRealizedValue(context.Context, uuid.UUID) (float64, error) {
	return s.stage.RealizedValue, nil
}

type stubLinkRepo struct {
	links []*entity.StageMaterial
}

func (s *stubLinkRepo) ListByStage(context.Context, uuid.UUID) ([]*entity.StageMaterial, error) {
	return s.links, nil
}
func (s *stubLinkRepo) Insert(_ context.Context, l *entity.StageMaterial) (*entity.StageMaterial, error) {
	return l, nil
}
func (s *stubLinkRepo) UpdateQuantity(context.Context, uuid.UUID, float64, float64) error {
	return nil
}

type stubMaterialRepo struct {
	materials []*entity.Material
}

func (s *stubMaterialRepo) ListBySupplier(context.Context, uuid.UUID) ([]*entity.Material, error) {
	return s.materials, nil
}
func (s *stubMaterialRepo) GetByIDs(context.Context, []uuid.UUID) ([]*entity.Material, error) {
	return s.materials, nil
}
func (s *stubMaterialRepo) Create(_ context.Context, m *entity.Material) (*entity.Material, error) {
	return m, nil
}
func (s *stubMaterialRepo) UpdatePrice(context.Context, uuid.UUID, float64, uuid.UUID) error {
	return nil
}

func TestExportStageMaterialsXLSX(t *testing.T) {
	stageID := uuid.New()
	vergalhao := &entity.Material{ID: uuid.New(), Name: "VERG CA50 5/16", Unit: "UN", UnitPrice: 30.98}
	cimento := &entity.Material{ID: uuid.New(), Name: "CIMENTO PORTLAND CP II", Unit: "KG", UnitPrice: 0.55}

	purchase := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc := NewService(
		&stubStageRepo{stage: &entity.Stage{ID: stageID, Name: "Fundação"}},
		&stubLinkRepo{links: []*entity.StageMaterial{
			{ID: uuid.New(), StageID: stageID, MaterialID: vergalhao.ID, Quantity: 45, TotalValue: 1394.10, PurchaseDate: purchase},
			{ID: uuid.New(), StageID: stageID, MaterialID: cimento.ID, Quantity: 120, TotalValue: 66, PurchaseDate: purchase},
		}},
		&stubMaterialRepo{materials: []*entity.Material{vergalhao, cimento}},
		slog.Default(),
	)

	data, err := svc.ExportStageMaterialsXLSX(context.Background(), stageID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Materials")
	require.NoError(t, err)
	// header + two links + totals row
	require.Len(t, rows, 4)

	assert.Equal(t, "Material", rows[0][0])
	assert.Equal(t, "VERG CA50 5/16", rows[1][0])
	assert.Equal(t, "UN", rows[1][1])
	assert.Equal(t, "2026-08-15", rows[1][5])
	assert.Equal(t, "CIMENTO PORTLAND CP II", rows[2][0])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "1460.1", rows[3][4])
}

func TestExportStageMaterialsEmptyStage(t *testing.T) {
	svc := NewService(
		&stubStageRepo{stage: &entity.Stage{ID: uuid.New(), Name: "Acabamento"}},
		&stubLinkRepo{},
		&stubMaterialRepo{},
		slog.Default(),
	)

	data, err := svc.ExportStageMaterialsXLSX(context.Background(), uuid.New())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Materials")
	require.NoError(t, err)
	// header + totals row only
	require.Len(t, rows, 2)
}
