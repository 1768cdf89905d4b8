package repository

import (
	"context"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// CriteriaFilter controls the criteria-table predicate. Divisao and area
// always participate; AlturaTipo joins the predicate only when MatchHeight
// is set (regulatory tables differ on whether height gates a requirement,
// so it is a configuration choice, not a hard-coded one).
type CriteriaFilter struct {
	Divisao     string
	AreaM2      float64
	AlturaTipo  string
	MatchHeight bool
}

// CriterionMatch a criteria row joined with its requirement definition.
type CriterionMatch struct {
	Criterion  domain.RequirementCriterion
	Definition domain.RequirementDefinition
}

// RequirementsRepository catalog of requirement definitions and their
// gating criteria.
type RequirementsRepository interface {
	ListAll(ctx context.Context) ([]domain.RequirementDefinition, error)
	FindByCodes(ctx context.Context, codes []string) ([]domain.RequirementDefinition, error)
	FindCriteria(ctx context.Context, filter CriteriaFilter) ([]CriterionMatch, error)

	// Seed-import writes.
	UpsertDefinition(ctx context.Context, def *domain.RequirementDefinition) error
	InsertCriterion(ctx context.Context, c *domain.RequirementCriterion) error
}
