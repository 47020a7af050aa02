package resolve

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratech/obras-tracker/internal/entity"
)

type fakeMaterialRepo struct {
	materials []*entity.Material

	createErr  error
	failOnName string

	created      int
	priceUpdates map[uuid.UUID]float64
}

func newFakeMaterialRepo(seed ...*entity.Material) *fakeMaterialRepo {
	return &fakeMaterialRepo{
		materials:    seed,
		priceUpdates: map[uuid.UUID]float64{},
	}
}

func (f *fakeMaterialRepo) ListBySupplier(_ context.Context, supplierID uuid.UUID) ([]*entity.Material, error) {
	out := make([]*entity.Material, 0, len(f.materials))
	for _, m := range f.materials {
		if m.SupplierID == supplierID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaterialRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range f.materials {
		for _, id := range ids {
			if m.ID == id {
				out = append(out, m)
			}
		}
	}
	return out, nil
}

func (f *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) (*entity.Material, error) {
	if f.createErr != nil && m.Name == f.failOnName {
		return nil, f.createErr
	}
	cp := *m
	cp.ID = uuid.New()
	f.materials = append(f.materials, &cp)
	f.created++
	return &cp, nil
}

func (f *fakeMaterialRepo) UpdatePrice(_ context.Context, id uuid.UUID, unitPrice float64, ownerID uuid.UUID) error {
	f.priceUpdates[id] = unitPrice
	for _, m := range f.materials {
		if m.ID == id {
			m.UnitPrice = unitPrice
			m.OwnerID = ownerID
		}
	}
	return nil
}

func TestResolveAllMatchesNearDuplicate(t *testing.T) {
	supplierID := uuid.New()
	ownerID := uuid.New()
	existing := &entity.Material{
		ID:         uuid.New(),
		Name:       "Cimento Portland CP II",
		SupplierID: supplierID,
		Unit:       "KG",
		UnitPrice:  0.50,
	}
	repo := newFakeMaterialRepo(existing)
	r := NewResolver(repo, slog.Default())

	outcomes, itemErrs, err := r.ResolveAll(context.Background(), []entity.CandidateItem{
		{Description: "CIMENTO PORTLAND CP-II", Quantity: 100, Unit: "KG", UnitPrice: 0.55},
	}, supplierID, ownerID)
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Len(t, outcomes, 1)

	assert.Equal(t, entity.ResolutionMatched, outcomes[0].Action)
	assert.Equal(t, existing.ID, outcomes[0].Material.ID)
	assert.Equal(t, 0, repo.created)
	assert.InDelta(t, 0.55, repo.priceUpdates[existing.ID], 1e-9)
}

func TestResolveAllCreatesOnMiss(t *testing.T) {
	supplierID := uuid.New()
	repo := newFakeMaterialRepo()
	r := NewResolver(repo, slog.Default())

	outcomes, itemErrs, err := r.ResolveAll(context.Background(), []entity.CandidateItem{
		{Description: "AREIA MEDIA LAVADA", Quantity: 8, Unit: "M3", UnitPrice: 95},
	}, supplierID, uuid.New())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Len(t, outcomes, 1)

	assert.Equal(t, entity.ResolutionCreated, outcomes[0].Action)
	assert.Equal(t, "AREIA MEDIA LAVADA", outcomes[0].Material.Name)
	assert.Equal(t, supplierID, outcomes[0].Material.SupplierID)
	assert.Equal(t, 0.0, outcomes[0].Material.StockQuantity)
	assert.Equal(t, 1, repo.created)
}

func TestResolveAllAccumulatorVisibility(t *testing.T) {
	// The same item twice in one batch: the first occurrence creates the
	// material, the second must match it instead of creating a duplicate.
	repo := newFakeMaterialRepo()
	r := NewResolver(repo, slog.Default())

	outcomes, itemErrs, err := r.ResolveAll(context.Background(), []entity.CandidateItem{
		{Description: "BLOCO CERAMICO 9X19X39", Quantity: 500, Unit: "UN", UnitPrice: 2.10},
		{Description: "Bloco Ceramico 9x19x39", Quantity: 300, Unit: "UN", UnitPrice: 2.10},
	}, uuid.New(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, itemErrs)
	require.Len(t, outcomes, 2)

	assert.Equal(t, entity.ResolutionCreated, outcomes[0].Action)
	assert.Equal(t, entity.ResolutionMatched, outcomes[1].Action)
	assert.Equal(t, outcomes[0].Material.ID, outcomes[1].Material.ID)
	assert.Equal(t, 1, repo.created)
}

func TestResolveAllUnknownPriceSkipsUpdate(t *testing.T) {
	supplierID := uuid.New()
	existing := &entity.Material{
		ID:         uuid.New(),
		Name:       "VERG CA50 5/16",
		SupplierID: supplierID,
		Unit:       "UN",
		UnitPrice:  30.98,
	}
	repo := newFakeMaterialRepo(existing)
	r := NewResolver(repo, slog.Default())

	outcomes, _, err := r.ResolveAll(context.Background(), []entity.CandidateItem{
		{Description: "VERG CA50 5/16", Quantity: 45, Unit: "UN", UnitPrice: entity.PriceUnknown},
	}, supplierID, uuid.New())
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	assert.Equal(t, entity.ResolutionMatched, outcomes[0].Action)
	assert.Empty(t, repo.priceUpdates)
	assert.InDelta(t, 30.98, outcomes[0].Material.UnitPrice, 1e-9)
}

func TestResolveAllBelowThresholdCreates(t *testing.T) {
	supplierID := uuid.New()
	existing := &entity.Material{
		ID:         uuid.New(),
		Name:       "CIMENTO PORTLAND CP II",
		SupplierID: supplierID,
		Unit:       "KG",
		UnitPrice:  0.50,
	}
	repo := newFakeMaterialRepo(existing)
	r := NewResolver(repo, slog.Default())

	outcomes, _, err := r.ResolveAll(context.Background(), []entity.CandidateItem{
		{Description: "CIMENTO PORTLAND CP IV", Quantity: 10, Unit: "KG", UnitPrice: 0.70},
	}, supplierID, uuid.New())
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, entity.ResolutionCreated, outcomes[0].Action)
	assert.Equal(t, 1, repo.created)
}

func TestResolveAllPartialFailure(t *testing.T) {
	repo := newFakeMaterialRepo()
	repo.createErr = errors.New("insert failed")
	repo.failOnName = "TELHA COLONIAL"
	r := NewResolver(repo, slog.Default())

	outcomes, itemErrs, err := r.ResolveAll(context.Background(), []entity.CandidateItem{
		{Description: "AREIA MEDIA LAVADA", Quantity: 8, Unit: "M3", UnitPrice: 95},
		{Description: "TELHA COLONIAL", Quantity: 200, Unit: "UN", UnitPrice: 3.40},
		{Description: "BRITA NUMERO 1", Quantity: 5, Unit: "M3", UnitPrice: 110},
	}, uuid.New(), uuid.New())
	require.NoError(t, err)

	require.Len(t, itemErrs, 1)
	assert.Equal(t, "TELHA COLONIAL", itemErrs[0].ItemDescription)
	require.Len(t, outcomes, 2)
	assert.Equal(t, 2, repo.created)
}
