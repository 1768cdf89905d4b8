package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nanoink/sistema-inspecao-incendio/internal/client"
	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
)

// MockCatalogRepository mock implementation of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetActivityClassification(ctx context.Context, cnae string) (*domain.ActivityClassification, error) {
	args := m.Called(ctx, cnae)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityClassification), args.Error(1)
}

func (m *MockCatalogRepository) ListActivityClassifications(ctx context.Context) ([]domain.ActivityClassification, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityClassification), args.Error(1)
}

func (m *MockCatalogRepository) ListHeightReferences(ctx context.Context) ([]domain.HeightReference, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HeightReference), args.Error(1)
}

func (m *MockCatalogRepository) GetHeightReference(ctx context.Context, tipo string) (*domain.HeightReference, error) {
	args := m.Called(ctx, tipo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HeightReference), args.Error(1)
}

func (m *MockCatalogRepository) ReplaceActivityClassifications(ctx context.Context, items []domain.ActivityClassification) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpsertHeightReferences(ctx context.Context, items []domain.HeightReference) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

// MockRequirementsRepository mock implementation of repository.RequirementsRepository.
type MockRequirementsRepository struct {
	mock.Mock
}

func (m *MockRequirementsRepository) ListAll(ctx context.Context) ([]domain.RequirementDefinition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequirementDefinition), args.Error(1)
}

func (m *MockRequirementsRepository) FindByCodes(ctx context.Context, codes []string) ([]domain.RequirementDefinition, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequirementDefinition), args.Error(1)
}

func (m *MockRequirementsRepository) FindCriteria(ctx context.Context, filter repository.CriteriaFilter) ([]repository.CriterionMatch, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CriterionMatch), args.Error(1)
}

func (m *MockRequirementsRepository) UpsertDefinition(ctx context.Context, def *domain.RequirementDefinition) error {
	args := m.Called(ctx, def)
	return args.Error(0)
}

func (m *MockRequirementsRepository) InsertCriterion(ctx context.Context, c *domain.RequirementCriterion) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockCompanyRequirementsRepository mock implementation of repository.CompanyRequirementsRepository.
type MockCompanyRequirementsRepository struct {
	mock.Mock
}

func (m *MockCompanyRequirementsRepository) ListByCompany(ctx context.Context, empresaID string) ([]repository.CompanyRequirementRow, error) {
	args := m.Called(ctx, empresaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CompanyRequirementRow), args.Error(1)
}

func (m *MockCompanyRequirementsRepository) ReplaceAll(ctx context.Context, empresaID string, records []domain.CompanyRequirement) error {
	args := m.Called(ctx, empresaID, records)
	return args.Error(0)
}

// MockCompaniesRepository mock implementation of repository.CompaniesRepository.
type MockCompaniesRepository struct {
	mock.Mock
}

func (m *MockCompaniesRepository) CreateCompany(ctx context.Context, c *domain.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompaniesRepository) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompaniesRepository) ListCompanies(ctx context.Context, filters repository.CompanyFilters, page, size int) ([]*domain.Company, int, error) {
	args := m.Called(ctx, filters, page, size)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Company), args.Int(1), args.Error(2)
}

func (m *MockCompaniesRepository) UpdateCompany(ctx context.Context, c *domain.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompaniesRepository) DeleteCompany(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockChecklistsRepository mock implementation of repository.ChecklistsRepository.
type MockChecklistsRepository struct {
	mock.Mock
}

func (m *MockChecklistsRepository) ListInspections(ctx context.Context) ([]domain.Inspection, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Inspection), args.Error(1)
}

func (m *MockChecklistsRepository) ListItems(ctx context.Context) ([]domain.ChecklistItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChecklistItem), args.Error(1)
}

func (m *MockChecklistsRepository) ListAnswers(ctx context.Context, empresaID string) ([]domain.CompanyChecklist, error) {
	args := m.Called(ctx, empresaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyChecklist), args.Error(1)
}

func (m *MockChecklistsRepository) ReplaceAnswers(ctx context.Context, empresaID string, answers []domain.CompanyChecklist) error {
	args := m.Called(ctx, empresaID, answers)
	return args.Error(0)
}

// MockLookup mock implementation of client.RequirementLookup.
type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) FetchByDivision(ctx context.Context, divisao string) ([]client.LookupRecord, error) {
	args := m.Called(ctx, divisao)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]client.LookupRecord), args.Error(1)
}
