package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratech/obras-tracker/internal/common"
	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/extract"
	"github.com/obratech/obras-tracker/internal/parser"
	"github.com/obratech/obras-tracker/internal/repository"
	"github.com/obratech/obras-tracker/internal/resolve"
)

const budgetText = `ITEM CODIGO DESCRICAO UND QTDE VLR UNIT VLR TOTAL
1 4725 VERG CA50 5/16 UN 45 30.98 1394.10
2 8310 CIMENTO PORTLAND CP II KG 120 0,55 66,00
Total: R$ 1.460,10`

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(context.Context, entity.RawDocument) (extract.TextExtractionResult, error) {
	f.calls++
	if f.err != nil {
		return extract.TextExtractionResult{}, f.err
	}
	return extract.TextExtractionResult{Text: f.text, Format: "PDF", Language: "pt"}, nil
}

type fakeResolver struct {
	outcomes []resolve.Outcome
	itemErrs []entity.ItemError
	err      error
	calls    int
}

func (f *fakeResolver) ResolveAll(_ context.Context, candidates []entity.CandidateItem, supplierID, ownerID uuid.UUID) ([]resolve.Outcome, []entity.ItemError, error) {
	f.calls++
	if f.err != nil {
		return nil, nil, f.err
	}
	if f.outcomes != nil || f.itemErrs != nil {
		return f.outcomes, f.itemErrs, nil
	}
	out := make([]resolve.Outcome, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, resolve.Outcome{
			Candidate: c,
			Action:    entity.ResolutionCreated,
			Material:  &entity.Material{ID: uuid.New(), Name: c.Description, Unit: c.Unit, UnitPrice: c.UnitPrice},
		})
	}
	return out, nil, nil
}

type fakeLinker struct {
	itemErrs []entity.ItemError
	err      error
	calls    int
}

func (f *fakeLinker) LinkAll(_ context.Context, outcomes []resolve.Outcome, stageID, projectID uuid.UUID) ([]entity.ItemError, error) {
	f.calls++
	return f.itemErrs, f.err
}

type fakeSupplierRepo struct {
	supplier *entity.Supplier
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	if f.supplier == nil {
		return nil, errors.New("supplier not found")
	}
	return f.supplier, nil
}
func (f *fakeSupplierRepo) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }
func (f *fakeSupplierRepo) List(context.Context) ([]*entity.Supplier, error) {
	return []*entity.Supplier{f.supplier}, nil
}

type fakeDocumentRepo struct {
	upserts int
	dedup   bool
	docs    map[uuid.UUID]*entity.BudgetDocument
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[uuid.UUID]*entity.BudgetDocument{}}
}

func (f *fakeDocumentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.BudgetDocument, error) {
	return f.docs[id], nil
}

func (f *fakeDocumentRepo) GetBySupplierAndHash(context.Context, uuid.UUID, []byte) (*entity.BudgetDocument, error) {
	return nil, errors.New("not found")
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc *entity.BudgetDocument) (*entity.BudgetDocument, error) {
	cp := *doc
	cp.ID = uuid.New()
	f.docs[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeDocumentRepo) UpsertByHash(ctx context.Context, doc *entity.BudgetDocument) (*entity.BudgetDocument, bool, error) {
	f.upserts++
	row, err := f.Create(ctx, doc)
	return row, f.dedup, err
}

func (f *fakeDocumentRepo) SetStorageKey(_ context.Context, id uuid.UUID, storageKey string) error {
	if d, ok := f.docs[id]; ok {
		d.StorageKey = storageKey
	}
	return nil
}

type fakeJobRepo struct {
	statuses []string
	counts   repository.JobCounts
	lastErr  string
}

func (f *fakeJobRepo) Start(_ context.Context, documentID uuid.UUID, format string) (*entity.IngestJob, error) {
	f.statuses = append(f.statuses, "RUNNING")
	return &entity.IngestJob{ID: uuid.New(), DocumentID: documentID, Status: "RUNNING"}, nil
}

func (f *fakeJobRepo) MarkExtractOK(_ context.Context, _ uuid.UUID, _ string) error {
	f.statuses = append(f.statuses, "EXTRACT_OK")
	return nil
}

func (f *fakeJobRepo) MarkParseOK(_ context.Context, _ uuid.UUID, _ int) error {
	f.statuses = append(f.statuses, "PARSE_OK")
	return nil
}

func (f *fakeJobRepo) FinishSuccess(_ context.Context, _ uuid.UUID, counts repository.JobCounts) error {
	f.statuses = append(f.statuses, "DONE")
	f.counts = counts
	return nil
}

func (f *fakeJobRepo) FinishFailure(_ context.Context, _ uuid.UUID, errorMessage string) error {
	f.statuses = append(f.statuses, "FAILED")
	f.lastErr = errorMessage
	return nil
}

type fakeStore struct {
	puts int
}

func (f *fakeStore) Put(context.Context, string, string, []byte) error {
	f.puts++
	return nil
}
func (f *fakeStore) PublicURL(key string) string { return "https://cdn.example.com/" + key }
func (f *fakeStore) Close() error                { return nil }

type procDeps struct {
	extractor *fakeExtractor
	resolver  *fakeResolver
	linker    *fakeLinker
	documents *fakeDocumentRepo
	jobs      *fakeJobRepo
	store     *fakeStore
}

func newTestProcessor(t *testing.T) (*Processor, *procDeps) {
	t.Helper()
	deps := &procDeps{
		extractor: &fakeExtractor{text: budgetText},
		resolver:  &fakeResolver{},
		linker:    &fakeLinker{},
		documents: newFakeDocumentRepo(),
		jobs:      &fakeJobRepo{},
		store:     &fakeStore{},
	}
	suppliers := &fakeSupplierRepo{supplier: &entity.Supplier{ID: uuid.New(), Name: "Ferragens Silva"}}
	proc := NewProcessor(
		deps.extractor,
		parser.NewParser(slog.Default()),
		deps.resolver,
		deps.linker,
		suppliers,
		deps.documents,
		deps.jobs,
		deps.store,
		slog.Default(),
	)
	return proc, deps
}

func testRequest(contentType string) Request {
	return Request{
		Document: entity.RawDocument{
			Bytes:       []byte("%PDF-1.4 fake"),
			ContentType: contentType,
			Filename:    "orcamento.pdf",
		},
		SupplierID: uuid.New(),
		ProjectID:  uuid.New(),
		StageID:    uuid.New(),
		OwnerID:    uuid.New(),
	}
}

func TestProcessDocumentHappyPath(t *testing.T) {
	proc, deps := newTestProcessor(t)

	result, err := proc.ProcessDocument(context.Background(), testRequest("application/pdf"))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.NoItemsFound)
	assert.Equal(t, 2, result.ItemsFound)
	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, 0, result.UpdatedCount)
	assert.Empty(t, result.Errors)
	assert.NotNil(t, result.Supplier)
	assert.Contains(t, result.DocumentURL, "https://cdn.example.com/")

	assert.Equal(t, []string{"RUNNING", "EXTRACT_OK", "PARSE_OK", "DONE"}, deps.jobs.statuses)
	assert.Equal(t, 1, deps.store.puts)
	assert.Equal(t, 1, deps.linker.calls)
}

func TestProcessDocumentUnsupportedFormatShortCircuits(t *testing.T) {
	proc, deps := newTestProcessor(t)

	_, err := proc.ProcessDocument(context.Background(), testRequest("image/jpeg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)

	// Nothing downstream ran: no audit row, no job, no catalog access.
	assert.Equal(t, 0, deps.documents.upserts)
	assert.Empty(t, deps.jobs.statuses)
	assert.Equal(t, 0, deps.extractor.calls)
	assert.Equal(t, 0, deps.resolver.calls)
	assert.Equal(t, 0, deps.linker.calls)
}

func TestProcessDocumentExtractionFailure(t *testing.T) {
	proc, deps := newTestProcessor(t)
	deps.extractor.err = common.NewAppError("EXTRACTION_FAILURE", "ocr timed out", common.ErrExtractionFailed)

	_, err := proc.ProcessDocument(context.Background(), testRequest("application/pdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtractionFailed)

	assert.Equal(t, []string{"RUNNING", "FAILED"}, deps.jobs.statuses)
	assert.Equal(t, 0, deps.resolver.calls)
}

func TestProcessDocumentNoItemsFound(t *testing.T) {
	proc, deps := newTestProcessor(t)
	deps.extractor.text = "Total: R$ 0,00\nPágina 1/1"

	result, err := proc.ProcessDocument(context.Background(), testRequest("application/pdf"))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.NoItemsFound)
	assert.Equal(t, 0, result.ItemsFound)
	assert.Equal(t, []string{"RUNNING", "EXTRACT_OK", "PARSE_OK", "DONE"}, deps.jobs.statuses)
	assert.Equal(t, 0, deps.resolver.calls)
	assert.Equal(t, 0, deps.linker.calls)
}

func TestProcessDocumentPartialFailure(t *testing.T) {
	proc, deps := newTestProcessor(t)

	material := &entity.Material{ID: uuid.New(), Name: "VERG CA50 5/16", Unit: "UN", UnitPrice: 30.98}
	deps.resolver.outcomes = []resolve.Outcome{
		{Candidate: entity.CandidateItem{Description: "VERG CA50 5/16"}, Action: entity.ResolutionMatched, Material: material},
	}
	deps.resolver.itemErrs = []entity.ItemError{
		{ItemDescription: "CIMENTO PORTLAND CP II", ErrorMessage: "insert failed"},
	}

	result, err := proc.ProcessDocument(context.Background(), testRequest("application/pdf"))
	require.NoError(t, err)

	// Partial progress is preserved but the run is not a success.
	assert.False(t, result.Success)
	assert.Equal(t, 2, result.ItemsFound)
	assert.Equal(t, 0, result.CreatedCount)
	assert.Equal(t, 1, result.UpdatedCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "CIMENTO PORTLAND CP II", result.Errors[0].ItemDescription)

	assert.Equal(t, "DONE", deps.jobs.statuses[len(deps.jobs.statuses)-1])
	assert.Equal(t, 1, deps.jobs.counts.FailedCount)
	assert.Equal(t, 1, deps.linker.calls)
}

func TestProcessDocumentLinkErrorsAccumulate(t *testing.T) {
	proc, deps := newTestProcessor(t)
	deps.linker.itemErrs = []entity.ItemError{
		{ItemDescription: "VERG CA50 5/16", ErrorMessage: "link insert failed"},
	}

	result, err := proc.ProcessDocument(context.Background(), testRequest("application/pdf"))
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "VERG CA50 5/16", result.Errors[0].ItemDescription)
}

func TestProcessDocumentDeduplicatedRerun(t *testing.T) {
	proc, deps := newTestProcessor(t)
	deps.documents.dedup = true

	result, err := proc.ProcessDocument(context.Background(), testRequest("application/pdf"))
	require.NoError(t, err)

	// A re-uploaded document still runs the pipeline end to end.
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ItemsFound)
	assert.Equal(t, []string{"RUNNING", "EXTRACT_OK", "PARSE_OK", "DONE"}, deps.jobs.statuses)
}
