package pipeline

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/constants"
	"github.com/obratech/obras-tracker/internal/blob"
	"github.com/obratech/obras-tracker/internal/common"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/extract"
	"github.com/obratech/obras-tracker/internal/linker"
	"github.com/obratech/obras-tracker/internal/parser"
	"github.com/obratech/obras-tracker/internal/repository"
	"github.com/obratech/obras-tracker/internal/resolve"
)

// Request is one budget-document ingestion call.
type Request struct {
	Document   entity.RawDocument
	SupplierID uuid.UUID
	ProjectID  uuid.UUID
	StageID    uuid.UUID
	OwnerID    uuid.UUID
}

// Processor drives one document through extraction, parsing, catalog
// resolution and stage linkage, advancing the ingest job's status as each
// stage completes.
type Processor struct {
	extractor extract.TextExtractor
	parser    *parser.Parser
	resolver  resolve.Resolver
	linker    linker.Linker

	suppliers repository.SupplierRepository
	documents repository.BudgetDocumentRepository
	jobs      repository.IngestJobRepository
	store     blob.Store

	logger *slog.Logger
}

func NewProcessor(
	extractor extract.TextExtractor,
	p *parser.Parser,
	resolver resolve.Resolver,
	linker linker.Linker,
	suppliers repository.SupplierRepository,
	documents repository.BudgetDocumentRepository,
	jobs repository.IngestJobRepository,
	store blob.Store,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		extractor: extractor,
		parser:    p,
		resolver:  resolver,
		linker:    linker,
		suppliers: suppliers,
		documents: documents,
		jobs:      jobs,
		store:     store,
		logger:    logger,
	}
}

// ProcessDocument runs the full pipeline for one uploaded document.
// Unsupported formats and extraction failures abort the run and are
// returned as errors; per-item resolution and linkage failures accumulate
// in the result, which then reports Success=false even with partial
// progress. A parse that finds nothing is a successful empty run.
func (p *Processor) ProcessDocument(ctx context.Context, req Request) (*entity.IngestResult, error) {
	result := &entity.IngestResult{}
	logger := p.logger
	if rid := common.RequestIDFromContext(ctx); rid != "" {
		logger = logger.With("request_id", rid)
	}

	supplier, err := p.suppliers.GetByID(ctx, req.SupplierID)
	if err != nil {
		return result, common.WrapError(err, "loading supplier")
	}
	result.Supplier = supplier

	format := constants.MapContentTypeToFormat(req.Document.ContentType)
	if format == "" {
		return result, common.NewAppError("UNSUPPORTED_FORMAT",
			fmt.Sprintf("media type %q is not accepted", req.Document.ContentType),
			common.ErrUnsupportedFormat)
	}

	hash := sha256.Sum256(req.Document.Bytes)
	doc, dedup, err := p.documents.UpsertByHash(ctx, &entity.BudgetDocument{
		SupplierID:  req.SupplierID,
		ProjectID:   req.ProjectID,
		StageID:     req.StageID,
		OwnerID:     req.OwnerID,
		Filename:    req.Document.Filename,
		ContentType: req.Document.ContentType,
		ContentHash: hash[:],
		UploadedAt:  time.Now().UTC(),
	})
	if err != nil {
		return result, common.WrapError(err, "recording document")
	}
	if dedup {
		logger.Info("document already ingested, re-running pipeline",
			"document_id", doc.ID, "supplier_id", req.SupplierID)
	}

	job, err := p.jobs.Start(ctx, doc.ID, format)
	if err != nil {
		return result, common.WrapError(err, "starting ingest job")
	}

	res, err := p.extractor.Extract(ctx, req.Document)
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return result, err
	}
	if err := p.jobs.MarkExtractOK(ctx, job.ID, res.Text); err != nil {
		return result, common.WrapError(err, "advancing ingest job")
	}

	result.DocumentURL = p.archiveDocument(ctx, doc, req.Document)

	items := p.parser.Parse(res.Text)
	if err := p.jobs.MarkParseOK(ctx, job.ID, len(items)); err != nil {
		return result, common.WrapError(err, "advancing ingest job")
	}
	result.ItemsFound = len(items)
	if len(items) == 0 {
		result.Success = true
		result.NoItemsFound = true
		_ = p.jobs.FinishSuccess(ctx, job.ID, repository.JobCounts{})
		logger.Info("document yielded no line items", "document_id", doc.ID)
		return result, nil
	}

	outcomes, resolveErrs, err := p.resolver.ResolveAll(ctx, items, req.SupplierID, req.OwnerID)
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return result, common.WrapError(err, "resolving items")
	}
	result.Errors = append(result.Errors, resolveErrs...)
	for _, out := range outcomes {
		switch out.Action {
		case entity.ResolutionCreated:
			result.CreatedCount++
		case entity.ResolutionMatched:
			result.UpdatedCount++
		}
	}

	linkErrs, err := p.linker.LinkAll(ctx, outcomes, req.StageID, req.ProjectID)
	result.Errors = append(result.Errors, linkErrs...)
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return result, common.WrapError(err, "linking items to stage")
	}

	result.Success = len(result.Errors) == 0
	_ = p.jobs.FinishSuccess(ctx, job.ID, repository.JobCounts{
		ItemsFound:   result.ItemsFound,
		CreatedCount: result.CreatedCount,
		UpdatedCount: result.UpdatedCount,
		FailedCount:  len(result.Errors),
	})

	logger.Info("document ingested",
		"document_id", doc.ID,
		"supplier_id", req.SupplierID,
		"items_found", result.ItemsFound,
		"created", result.CreatedCount,
		"updated", result.UpdatedCount,
		"failed", len(result.Errors),
	)
	return result, nil
}

// archiveDocument uploads the audit copy. Archiving is best effort; a blob
// store outage must not fail an otherwise healthy ingestion.
func (p *Processor) archiveDocument(ctx context.Context, doc *entity.BudgetDocument, raw entity.RawDocument) string {
	if p.store == nil {
		return ""
	}
	key := doc.StorageKey
	if key == "" {
		key = fmt.Sprintf("budgets/%s/%s_%s", doc.SupplierID, doc.ID, raw.Filename)
		if err := p.store.Put(ctx, key, raw.ContentType, raw.Bytes); err != nil {
			p.logger.Warn("failed to archive document copy", "document_id", doc.ID, "error", err)
			return ""
		}
		if err := p.documents.SetStorageKey(ctx, doc.ID, key); err != nil {
			p.logger.Warn("failed to record document storage key", "document_id", doc.ID, "error", err)
		}
	}
	return p.store.PublicURL(key)
}
