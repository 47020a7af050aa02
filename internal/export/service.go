package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/repository"
)

// Service produces XLSX workbooks from stage material data.
type Service struct {
	stages    repository.StageRepository
	links     repository.StageMaterialRepository
	materials repository.MaterialRepository
	logger    *slog.Logger
}

func NewService(stages repository.StageRepository, links repository.StageMaterialRepository, materials repository.MaterialRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{stages: stages, links: links, materials: materials, logger: logger}
}

// ExportStageMaterialsXLSX returns a workbook listing every material linked
// to the stage, one row per link, with a totals row at the bottom.
func (s *Service) ExportStageMaterialsXLSX(ctx context.Context, stageID uuid.UUID) ([]byte, error) {
	start := time.Now()

	stage, err := s.stages.GetByID(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("query stage: %w", err)
	}
	links, err := s.links.ListByStage(ctx, stageID)
	if err != nil {
		return nil, fmt.Errorf("query stage materials: %w", err)
	}

	materialByID := make(map[uuid.UUID]*entity.Material)
	if len(links) > 0 {
		ids := make([]uuid.UUID, 0, len(links))
		for _, l := range links {
			ids = append(ids, l.MaterialID)
		}
		mats, err := s.materials.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("query materials: %w", err)
		}
		for _, m := range mats {
			materialByID[m.ID] = m
		}
	}

	f := excelize.NewFile()
	const sheet = "Materials"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Material",
		"Unit",
		"Quantity",
		"Unit Price",
		"Total Value",
		"Purchase Date",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	row := 2
	grandTotal := 0.0
	for _, l := range links {
		name := ""
		unit := ""
		unitPrice := 0.0
		if m, ok := materialByID[l.MaterialID]; ok {
			name = m.Name
			unit = m.Unit
			unitPrice = m.UnitPrice
		}

		write(1, row, name)
		write(2, row, unit)
		write(3, row, l.Quantity)
		write(4, row, unitPrice)
		write(5, row, l.TotalValue)
		if !l.PurchaseDate.IsZero() {
			write(6, row, l.PurchaseDate.Format("2006-01-02"))
		} else {
			write(6, row, "")
		}

		grandTotal += l.TotalValue
		row++
	}

	write(1, row, "Total")
	write(5, row, grandTotal)

	_ = f.SetColWidth(sheet, "A", "A", 42) // material name
	_ = f.SetColWidth(sheet, "B", "B", 8)  // unit
	_ = f.SetColWidth(sheet, "C", "E", 14) // quantities and values
	_ = f.SetColWidth(sheet, "F", "F", 14) // date

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"stage_id", stageID.String(),
		"stage", stage.Name,
		"rows", len(links),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
