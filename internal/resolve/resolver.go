package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/obratech/obras-tracker/internal/entity"
	"github.com/obratech/obras-tracker/internal/repository"
)

// Outcome records what resolution did with a single candidate item.
type Outcome struct {
	Candidate entity.CandidateItem
	Action    entity.ResolutionAction
	Material  *entity.Material
}

// catalogEntry caches the normalized form of a material name so each
// candidate comparison does not re-normalize the whole catalog.
type catalogEntry struct {
	material *entity.Material
	normName string
	tokens   map[string]struct{}
}

type Resolver interface {
	// ResolveAll matches every candidate against the supplier's catalog,
	// creating materials for the ones nothing matches. Materials created
	// mid-batch are visible to the candidates that follow them, so a
	// document listing the same item twice yields one creation and one
	// match. Per-item failures are collected, not fatal.
	ResolveAll(ctx context.Context, candidates []entity.CandidateItem, supplierID, ownerID uuid.UUID) ([]Outcome, []entity.ItemError, error)
}

type resolver struct {
	materials repository.MaterialRepository
	logger    *slog.Logger
}

func NewResolver(materials repository.MaterialRepository, logger *slog.Logger) Resolver {
	return &resolver{
		materials: materials,
		logger:    logger,
	}
}

func (r *resolver) ResolveAll(ctx context.Context, candidates []entity.CandidateItem, supplierID, ownerID uuid.UUID) ([]Outcome, []entity.ItemError, error) {
	existing, err := r.materials.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading supplier catalog: %w", err)
	}

	catalog := make([]catalogEntry, 0, len(existing)+len(candidates))
	for _, m := range existing {
		catalog = append(catalog, newCatalogEntry(m))
	}

	outcomes := make([]Outcome, 0, len(candidates))
	var itemErrors []entity.ItemError

	for _, cand := range candidates {
		outcome, err := r.resolveOne(ctx, cand, catalog, supplierID, ownerID)
		if err != nil {
			r.logger.Warn("failed to resolve candidate item",
				"description", cand.Description, "supplier_id", supplierID, "error", err)
			itemErrors = append(itemErrors, entity.ItemError{
				ItemDescription: cand.Description,
				ErrorMessage:    err.Error(),
			})
			continue
		}
		if outcome.Action == entity.ResolutionCreated {
			catalog = append(catalog, newCatalogEntry(outcome.Material))
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, itemErrors, nil
}

func (r *resolver) resolveOne(ctx context.Context, cand entity.CandidateItem, catalog []catalogEntry, supplierID, ownerID uuid.UUID) (Outcome, error) {
	normName := NormalizeName(cand.Description)
	if normName == "" {
		return Outcome{}, fmt.Errorf("item description %q normalizes to nothing", cand.Description)
	}
	tokens := TokenSet(normName)

	if match := bestMatch(normName, tokens, catalog); match != nil {
		if cand.HasKnownPrice() && cand.UnitPrice != match.UnitPrice {
			if err := r.materials.UpdatePrice(ctx, match.ID, cand.UnitPrice, ownerID); err != nil {
				return Outcome{}, fmt.Errorf("updating price of material %s: %w", match.ID, err)
			}
			match.UnitPrice = cand.UnitPrice
			match.OwnerID = ownerID
		}
		return Outcome{Candidate: cand, Action: entity.ResolutionMatched, Material: match}, nil
	}

	price := cand.UnitPrice
	if !cand.HasKnownPrice() {
		price = entity.PriceUnknown
	}
	created, err := r.materials.Create(ctx, &entity.Material{
		Name:          cand.Description,
		SupplierID:    supplierID,
		Unit:          cand.Unit,
		UnitPrice:     price,
		StockQuantity: 0,
		OwnerID:       ownerID,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("creating material %q: %w", cand.Description, err)
	}
	return Outcome{Candidate: cand, Action: entity.ResolutionCreated, Material: created}, nil
}

// bestMatch returns the catalog material most similar to the candidate, or
// nil when nothing clears the threshold. An exact normalized-name hit wins
// without scoring the rest.
func bestMatch(normName string, tokens map[string]struct{}, catalog []catalogEntry) *entity.Material {
	var best *entity.Material
	bestScore := 0.0
	for _, entry := range catalog {
		if entry.normName == normName {
			return entry.material
		}
		score := Jaccard(tokens, entry.tokens)
		if score >= SimilarityThreshold && score > bestScore {
			best = entry.material
			bestScore = score
		}
	}
	return best
}

func newCatalogEntry(m *entity.Material) catalogEntry {
	norm := NormalizeName(m.Name)
	return catalogEntry{
		material: m,
		normName: norm,
		tokens:   TokenSet(norm),
	}
}
