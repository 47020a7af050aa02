package linker

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/resolve"
)

type fakeLinkRepo struct {
	links []*entity.StageMaterial

	insertErr      error
	failOnMaterial uuid.UUID

	inserts int
	updates int
}

func (f *fakeLinkRepo) ListByStage(_ context.Context, stageID uuid.UUID) ([]*entity.StageMaterial, error) {
	var out []*entity.StageMaterial
	for _, l := range f.links {
		if l.StageID == stageID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) Insert(_ context.Context, link *entity.StageMaterial) (*entity.StageMaterial, error) {
	if f.insertErr != nil && link.MaterialID == f.failOnMaterial {
		return nil, f.insertErr
	}
	cp := *link
	cp.ID = uuid.New()
	f.links = append(f.links, &cp)
	f.inserts++
	return &cp, nil
}

func (f *fakeLinkRepo) UpdateQuantity(_ context.Context, id uuid.UUID, quantity, totalValue float64) error {
	for _, l := range f.links {
		if l.ID == id {
			l.Quantity = quantity
			l.TotalValue = totalValue
		}
	}
	f.updates++
	return nil
}

type fakeStageRepo struct {
	links      *fakeLinkRepo
	recomputes int
	realized   float64
}

func (f *fakeStageRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Stage, error) {
	return &entity.Stage{ID: id, RealizedValue: f.realized}, nil
}

func (f *fakeStageRepo) Exists(context.Context, uuid.UUID) (bool, error) { return true, nil }

func (f *fakeStageRepo) RecomputeRealizedValue(ctx context.Context, stageID uuid.UUID) (float64, error) {
	f.recomputes++
	total := 0.0
	links, _ := f.links.ListByStage(ctx, stageID)
	for _, l := range links {
		total += l.TotalValue
	}
	f.realized = total
	return total, nil
}

func outcome(materialID uuid.UUID, qty, price float64, desc string) resolve.Outcome {
	return resolve.Outcome{
		Candidate: entity.CandidateItem{Description: desc, Quantity: qty, Unit: "UN", UnitPrice: price},
		Action:    entity.ResolutionMatched,
		Material:  &entity.Material{ID: materialID, Name: desc, Unit: "UN", UnitPrice: price},
	}
}

func TestLinkAllInsertsAndRecomputes(t *testing.T) {
	links := &fakeLinkRepo{}
	stages := &fakeStageRepo{links: links}
	l := NewLinker(links, stages, slog.Default())

	stageID := uuid.New()
	itemErrs, err := l.LinkAll(context.Background(), []resolve.Outcome{
		outcome(uuid.New(), 45, 30.98, "VERG CA50 5/16"),
		outcome(uuid.New(), 8, 95, "AREIA MEDIA LAVADA"),
	}, stageID, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, itemErrs)

	assert.Equal(t, 2, links.inserts)
	assert.Equal(t, 1, stages.recomputes)
	assert.InDelta(t, 45*30.98+8*95, stages.realized, 1e-9)
}

func TestLinkAllUpdateIsIdempotent(t *testing.T) {
	materialID := uuid.New()
	stageID := uuid.New()
	projectID := uuid.New()

	links := &fakeLinkRepo{}
	stages := &fakeStageRepo{links: links}
	l := NewLinker(links, stages, slog.Default())

	out := []resolve.Outcome{outcome(materialID, 45, 30.98, "VERG CA50 5/16")}

	_, err := l.LinkAll(context.Background(), out, stageID, projectID)
	require.NoError(t, err)
	_, err = l.LinkAll(context.Background(), out, stageID, projectID)
	require.NoError(t, err)

	// Second run replaces the quantity instead of inserting or accumulating.
	assert.Equal(t, 1, links.inserts)
	assert.Equal(t, 1, links.updates)
	require.Len(t, links.links, 1)
	assert.Equal(t, 45.0, links.links[0].Quantity)
	assert.InDelta(t, 45*30.98, stages.realized, 1e-9)
}

func TestLinkAllDuplicateMaterialWithinBatch(t *testing.T) {
	materialID := uuid.New()
	links := &fakeLinkRepo{}
	stages := &fakeStageRepo{links: links}
	l := NewLinker(links, stages, slog.Default())

	_, err := l.LinkAll(context.Background(), []resolve.Outcome{
		outcome(materialID, 10, 2, "BLOCO CERAMICO 9X19X39"),
		outcome(materialID, 25, 2, "BLOCO CERAMICO 9X19X39"),
	}, uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 1, links.inserts)
	assert.Equal(t, 1, links.updates)
	require.Len(t, links.links, 1)
	assert.Equal(t, 25.0, links.links[0].Quantity)
}

func TestLinkAllPartialFailure(t *testing.T) {
	badMaterial := uuid.New()
	links := &fakeLinkRepo{insertErr: errors.New("insert failed"), failOnMaterial: badMaterial}
	stages := &fakeStageRepo{links: links}
	l := NewLinker(links, stages, slog.Default())

	itemErrs, err := l.LinkAll(context.Background(), []resolve.Outcome{
		outcome(uuid.New(), 8, 95, "AREIA MEDIA LAVADA"),
		outcome(badMaterial, 200, 3.40, "TELHA COLONIAL"),
	}, uuid.New(), uuid.New())
	require.NoError(t, err)

	require.Len(t, itemErrs, 1)
	assert.Equal(t, "TELHA COLONIAL", itemErrs[0].ItemDescription)
	assert.Equal(t, 1, links.inserts)
	// The recompute still runs so partial progress lands in the aggregate.
	assert.Equal(t, 1, stages.recomputes)
	assert.InDelta(t, 8*95, stages.realized, 1e-9)
}

func TestLinkAllSetsPurchaseDate(t *testing.T) {
	links := &fakeLinkRepo{}
	stages := &fakeStageRepo{links: links}
	l := NewLinker(links, stages, slog.Default())

	before := time.Now().Add(-time.Second)
	_, err := l.LinkAll(context.Background(), []resolve.Outcome{
		outcome(uuid.New(), 1, 10, "CAL HIDRATADA CH III"),
	}, uuid.New(), uuid.New())
	require.NoError(t, err)

	require.Len(t, links.links, 1)
	assert.True(t, links.links[0].PurchaseDate.After(before))
}
