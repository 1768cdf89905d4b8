package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/client"
	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
)

// Gate thresholds: buildings above 12 m with more than 750 m² are resolved
// against the external authoritative table, everything else against the
// local criteria table. Both comparisons are strictly greater-than.
const (
	gateHeightMinM = 12.0
	gateAreaM2     = 750.0
)

// ResolutionSource which strategy produced the requirement set.
type ResolutionSource string

const (
	SourceCriteria ResolutionSource = "criteria"
	SourceExternal ResolutionSource = "external"
)

// Resolution the outcome of a requirement resolution. An empty Requirements
// with an empty Warning is a valid outcome (nothing applies); Warning is set
// only when the external source failed and the set degraded to empty.
type Resolution struct {
	Requirements []domain.RequirementDefinition
	Source       ResolutionSource
	Warning      string
}

// Resolver the requirement resolution engine: decides, per company profile,
// which safety requirements apply.
type Resolver struct {
	catalogRepo repository.CatalogRepository
	reqRepo     repository.RequirementsRepository
	lookup      client.RequirementLookup
	matchHeight bool
	logger      *zap.Logger
}

func NewResolver(
	catalogRepo repository.CatalogRepository,
	reqRepo repository.RequirementsRepository,
	lookup client.RequirementLookup,
	matchHeight bool,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		catalogRepo: catalogRepo,
		reqRepo:     reqRepo,
		lookup:      lookup,
		matchHeight: matchHeight,
		logger:      logger,
	}
}

// Resolve computes the applicable requirement set for a profile.
// Invalid input is rejected before any lookup; external-source failure
// degrades to an empty set with a warning, never to a different policy's
// result.
func (r *Resolver) Resolve(ctx context.Context, profile domain.ResolutionProfile) (*Resolution, error) {
	if profile.Divisao == "" {
		return nil, fmt.Errorf("%w: divisao is required", domain.ErrInvalidInput)
	}
	if profile.AreaM2 < 0 {
		return nil, fmt.Errorf("%w: area must not be negative", domain.ErrInvalidInput)
	}
	if profile.AlturaTipo == "" {
		return nil, fmt.Errorf("%w: altura_tipo is required", domain.ErrInvalidInput)
	}

	ref, err := r.catalogRepo.GetHeightReference(ctx, profile.AlturaTipo)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown altura_tipo %q", domain.ErrInvalidInput, profile.AlturaTipo)
		}
		return nil, err
	}

	if gateToExternal(ref, profile.AreaM2) {
		return r.resolveExternal(ctx, profile, ref)
	}
	return r.resolveCriteria(ctx, profile)
}

// gateToExternal is true only when both thresholds are strictly exceeded.
// A missing minimum height (single-story or "below x" rows) never gates.
func gateToExternal(ref *domain.HeightReference, areaM2 float64) bool {
	return ref.HMinM != nil && *ref.HMinM > gateHeightMinM && areaM2 > gateAreaM2
}

func (r *Resolver) resolveExternal(ctx context.Context, profile domain.ResolutionProfile, ref *domain.HeightReference) (*Resolution, error) {
	res := &Resolution{Source: SourceExternal}

	label, ok := MapDenomination(ref.Denominacao)
	if !ok {
		// Catalog row the external vocabulary does not know: a valid empty
		// outcome, not a fetch failure.
		r.logger.Warn("height denomination has no external label",
			zap.String("denominacao", ref.Denominacao),
		)
		return res, nil
	}

	records, err := r.lookup.FetchByDivision(ctx, profile.Divisao)
	if err != nil {
		r.logger.Warn("external requirement lookup unavailable, resolving empty",
			zap.String("divisao", profile.Divisao),
			zap.Error(err),
		)
		res.Warning = fmt.Sprintf("external requirement lookup unavailable: %v", err)
		return res, nil
	}

	record, found := matchLookupRecord(records, profile.Divisao, label)
	if !found {
		r.logger.Info("no external record for division/height pair",
			zap.String("divisao", profile.Divisao),
			zap.String("altura", label),
		)
		return res, nil
	}

	codes := affirmativeCodes(record)
	if len(codes) == 0 {
		return res, nil
	}

	defs, err := r.reqRepo.FindByCodes(ctx, codes)
	if err != nil {
		return nil, err
	}

	res.Requirements = sortByOrdem(defs)
	return res, nil
}

func (r *Resolver) resolveCriteria(ctx context.Context, profile domain.ResolutionProfile) (*Resolution, error) {
	matches, err := r.reqRepo.FindCriteria(ctx, repository.CriteriaFilter{
		Divisao:     profile.Divisao,
		AreaM2:      profile.AreaM2,
		AlturaTipo:  profile.AlturaTipo,
		MatchHeight: r.matchHeight,
	})
	if err != nil {
		return nil, err
	}

	// Dedupe by requirement id. A requirement may have several satisfying
	// criteria rows; one suffices, preferring a row that carries a note.
	byID := make(map[string]*domain.RequirementDefinition)
	order := make([]string, 0, len(matches))
	for _, m := range matches {
		def, seen := byID[m.Definition.ID]
		if !seen {
			d := m.Definition
			d.Observacao = m.Criterion.Observacao
			byID[d.ID] = &d
			order = append(order, d.ID)
			continue
		}
		if def.Observacao == nil && m.Criterion.Observacao != nil {
			def.Observacao = m.Criterion.Observacao
		}
	}

	defs := make([]domain.RequirementDefinition, 0, len(order))
	for _, id := range order {
		defs = append(defs, *byID[id])
	}

	return &Resolution{
		Requirements: sortByOrdem(defs),
		Source:       SourceCriteria,
	}, nil
}

// matchLookupRecord selects strictly by exact (division, height label)
// equality; anything else yields not-found rather than a guess.
func matchLookupRecord(records []client.LookupRecord, divisao, label string) (client.LookupRecord, bool) {
	for _, rec := range records {
		if rec.Divisao == divisao && rec.Altura == label {
			return rec, true
		}
	}
	return client.LookupRecord{}, false
}

// affirmativeCodes maps affirmative category columns to requirement codes,
// sorted for deterministic output. Columns missing from the static table
// are ignored.
func affirmativeCodes(rec client.LookupRecord) []string {
	var codes []string
	for column, value := range rec.Columns {
		code, known := columnToCode[column]
		if !known || !isAffirmative(value) {
			continue
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func sortByOrdem(defs []domain.RequirementDefinition) []domain.RequirementDefinition {
	sort.SliceStable(defs, func(i, j int) bool { return defs[i].Ordem < defs[j].Ordem })
	return defs
}
