package utils

import (
	"time"

	"github.com/obratech/obras-tracker/gen/ent"
	obraspb "github.com/obratech/obras-tracker/gen/proto/obras/v1"
	"github.com/obratech/obras-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToSupplier(e *ent.Supplier) *entity.Supplier {
	return &entity.Supplier{
		ID:        e.ID,
		Name:      e.Name,
		TaxID:     e.TaxID,
		Email:     e.Email,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToMaterial(e *ent.Material) *entity.Material {
	return &entity.Material{
		ID:            e.ID,
		Name:          e.Name,
		SupplierID:    e.SupplierID,
		Unit:          e.Unit,
		UnitPrice:     e.UnitPrice,
		StockQuantity: e.StockQuantity,
		OwnerID:       e.OwnerID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToStage(e *ent.Stage) *entity.Stage {
	return &entity.Stage{
		ID:            e.ID,
		ProjectID:     e.ProjectID,
		Name:          e.Name,
		BudgetedValue: e.BudgetedValue,
		RealizedValue: e.RealizedValue,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToStageMaterial(e *ent.StageMaterial) *entity.StageMaterial {
	return &entity.StageMaterial{
		ID:           e.ID,
		StageID:      e.StageID,
		ProjectID:    e.ProjectID,
		MaterialID:   e.MaterialID,
		Quantity:     e.Quantity,
		TotalValue:   e.TotalValue,
		PurchaseDate: e.PurchaseDate,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToBudgetDocument(e *ent.BudgetDocument) *entity.BudgetDocument {
	return &entity.BudgetDocument{
		ID:          e.ID,
		SupplierID:  e.SupplierID,
		ProjectID:   e.ProjectID,
		StageID:     e.StageID,
		OwnerID:     e.OwnerID,
		Filename:    e.Filename,
		ContentType: e.ContentType,
		ContentHash: e.ContentHash,
		StorageKey:  e.StorageKey,
		UploadedAt:  e.UploadedAt,
	}
}

func ToIngestJob(e *ent.IngestJob) *entity.IngestJob {
	return &entity.IngestJob{
		ID:           e.ID,
		DocumentID:   e.DocumentID,
		Status:       strOrEmpty(e.Status),
		ErrorMessage: e.ErrorMessage,
		OCRText:      e.OcrText,
		ItemsFound:   e.ItemsFound,
		CreatedCount: e.CreatedCount,
		UpdatedCount: e.UpdatedCount,
		FailedCount:  e.FailedCount,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
	}
}

func ToPBSupplier(s *entity.Supplier) *obraspb.Supplier {
	return &obraspb.Supplier{
		Id:        s.ID.String(),
		Name:      s.Name,
		TaxId:     s.TaxID,
		Email:     strOrEmpty(s.Email),
		Phone:     strOrEmpty(s.Phone),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBMaterial(m *entity.Material) *obraspb.Material {
	return &obraspb.Material{
		Id:            m.ID.String(),
		Name:          m.Name,
		SupplierId:    m.SupplierID.String(),
		Unit:          m.Unit,
		UnitPrice:     m.UnitPrice,
		StockQuantity: m.StockQuantity,
		CreatedAt:     m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBStageMaterial(l *entity.StageMaterial) *obraspb.StageMaterial {
	return &obraspb.StageMaterial{
		Id:           l.ID.String(),
		StageId:      l.StageID.String(),
		ProjectId:    l.ProjectID.String(),
		MaterialId:   l.MaterialID.String(),
		Quantity:     l.Quantity,
		TotalValue:   l.TotalValue,
		PurchaseDate: l.PurchaseDate.Format("2006-01-02"),
	}
}

func ToPBIngestResult(r *entity.IngestResult) *obraspb.IngestResult {
	out := &obraspb.IngestResult{
		Success:      r.Success,
		NoItemsFound: r.NoItemsFound,
		ItemsFound:   int32(r.ItemsFound),
		CreatedCount: int32(r.CreatedCount),
		UpdatedCount: int32(r.UpdatedCount),
		DocumentUrl:  r.DocumentURL,
	}
	for _, e := range r.Errors {
		out.Errors = append(out.Errors, &obraspb.ItemError{
			ItemDescription: e.ItemDescription,
			ErrorMessage:    e.ErrorMessage,
		})
	}
	if r.Supplier != nil {
		out.Supplier = ToPBSupplier(r.Supplier)
	}
	return out
}
