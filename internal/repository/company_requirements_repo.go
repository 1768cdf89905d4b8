package repository

import (
	"context"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// CompanyRequirementRow a compliance record joined with its requirement
// definition, as the requirements page consumes it.
type CompanyRequirementRow struct {
	Record     domain.CompanyRequirement
	Definition domain.RequirementDefinition
}

// CompanyRequirementsRepository empresa_exigencias store. The set for a
// company is only ever written whole: ReplaceAll deletes and reinserts
// inside a single transaction so readers never observe the transient empty
// state and a failed write leaves the previous set intact.
type CompanyRequirementsRepository interface {
	ListByCompany(ctx context.Context, empresaID string) ([]CompanyRequirementRow, error)
	ReplaceAll(ctx context.Context, empresaID string, records []domain.CompanyRequirement) error
}
