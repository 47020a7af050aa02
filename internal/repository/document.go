package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/gen/ent"
	entdoc "github.com/obratech/obras-tracker/gen/ent/budgetdocument"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/utils"
)

type BudgetDocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BudgetDocument, error)
	GetBySupplierAndHash(ctx context.Context, supplierID uuid.UUID, hash []byte) (*entity.BudgetDocument, error)
	Create(ctx context.Context, doc *entity.BudgetDocument) (*entity.BudgetDocument, error)
	// UpsertByHash reuses the audit row when the same bytes were already
	// uploaded for the supplier; the bool reports deduplication.
	UpsertByHash(ctx context.Context, doc *entity.BudgetDocument) (*entity.BudgetDocument, bool, error)
	SetStorageKey(ctx context.Context, id uuid.UUID, storageKey string) error
}

type budgetDocumentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBudgetDocumentRepository(client *ent.Client, logger *slog.Logger) BudgetDocumentRepository {
	return &budgetDocumentRepository{
		client: client,
		logger: logger,
	}
}

func (r *budgetDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BudgetDocument, error) {
	row, err := r.client.BudgetDocument.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get budget document", "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToBudgetDocument(row), nil
}

func (r *budgetDocumentRepository) GetBySupplierAndHash(ctx context.Context, supplierID uuid.UUID, hash []byte) (*entity.BudgetDocument, error) {
	row, err := r.client.BudgetDocument.Query().
		Where(
			entdoc.SupplierID(supplierID),
			entdoc.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToBudgetDocument(row), nil
}

func (r *budgetDocumentRepository) Create(ctx context.Context, doc *entity.BudgetDocument) (*entity.BudgetDocument, error) {
	row, err := r.client.BudgetDocument.Create().
		SetSupplierID(doc.SupplierID).
		SetProjectID(doc.ProjectID).
		SetStageID(doc.StageID).
		SetOwnerID(doc.OwnerID).
		SetFilename(doc.Filename).
		SetContentType(doc.ContentType).
		SetContentHash(doc.ContentHash).
		SetStorageKey(doc.StorageKey).
		SetUploadedAt(doc.UploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create budget document",
			"supplier_id", doc.SupplierID, "filename", doc.Filename, "error", err)
		return nil, err
	}
	return utils.ToBudgetDocument(row), nil
}

func (r *budgetDocumentRepository) UpsertByHash(ctx context.Context, doc *entity.BudgetDocument) (*entity.BudgetDocument, bool, error) {
	if existing, err := r.GetBySupplierAndHash(ctx, doc.SupplierID, doc.ContentHash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, doc)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *budgetDocumentRepository) SetStorageKey(ctx context.Context, id uuid.UUID, storageKey string) error {
	err := r.client.BudgetDocument.UpdateOneID(id).SetStorageKey(storageKey).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set document storage key", "document_id", id, "error", err)
	}
	return err
}
