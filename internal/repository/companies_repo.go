package repository

import (
	"context"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// CompanyFilters list filters for the registered-companies table.
type CompanyFilters struct {
	Search    string // matches razao_social / nome_fantasia / cnpj
	Divisao   string
	GrauRisco string
}

// CompaniesRepository empresa aggregate store.
type CompaniesRepository interface {
	CreateCompany(ctx context.Context, c *domain.Company) error
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	ListCompanies(ctx context.Context, filters CompanyFilters, page, size int) ([]*domain.Company, int, error)
	UpdateCompany(ctx context.Context, c *domain.Company) error
	DeleteCompany(ctx context.Context, id string) error
}
