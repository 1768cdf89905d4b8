package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
)

type companyServiceFixture struct {
	companiesRepo  *MockCompaniesRepository
	catalogRepo    *MockCatalogRepository
	reqRepo        *MockRequirementsRepository
	companyReqRepo *MockCompanyRequirementsRepository
	lookup         *MockLookup
	service        *CompanyService
}

func newCompanyServiceFixture() *companyServiceFixture {
	f := &companyServiceFixture{
		companiesRepo:  new(MockCompaniesRepository),
		catalogRepo:    new(MockCatalogRepository),
		reqRepo:        new(MockRequirementsRepository),
		companyReqRepo: new(MockCompanyRequirementsRepository),
		lookup:         new(MockLookup),
	}
	logger := zap.NewNop()
	resolver := NewResolver(f.catalogRepo, f.reqRepo, f.lookup, false, logger)
	synchronizer := NewSynchronizer(f.companyReqRepo, false, logger)
	f.service = NewCompanyService(f.companiesRepo, f.catalogRepo, resolver, synchronizer, logger)
	return f
}

func validCreateInput() CreateCompanyInput {
	return CreateCompanyInput{
		RazaoSocial:  "Padaria Central Ltda",
		NomeFantasia: "Padaria Central",
		CNPJ:         "12.345.678/0001-00",
		Responsavel:  "Maria Silva",
		Email:        "contato@padariacentral.com.br",
		Telefone:     "(11) 99999-0000",
		CEP:          "01001-000",
		Rua:          "Praça da Sé",
		Numero:       "100",
		Bairro:       "Sé",
		Cidade:       "São Paulo",
		Estado:       "SP",
		CNAE:         "1091-1/02",
		AlturaTipo:   "terrea",
		AreaM2:       180,
		NumOcupantes: 12,
	}
}

func TestCreateCompany_ClassifiesAndSyncs(t *testing.T) {
	f := newCompanyServiceFixture()

	f.catalogRepo.On("GetActivityClassification", mock.Anything, "1091-1/02").
		Return(&domain.ActivityClassification{
			CNAE:              "1091-1/02",
			Grupo:             "F",
			OcupacaoUso:       "Comercial",
			Divisao:           "f-1",
			Descricao:         "Fabricação de produtos de padaria",
			CargaIncendioMJM2: 400,
		}, nil)
	f.catalogRepo.On("GetHeightReference", mock.Anything, "terrea").
		Return(&domain.HeightReference{Tipo: "terrea", Denominacao: "Térrea"}, nil)

	f.companiesRepo.On("CreateCompany", mock.Anything, mock.Anything).Return(nil)
	f.reqRepo.On("FindCriteria", mock.Anything, mock.Anything).Return([]repository.CriterionMatch{
		{
			Criterion:  domain.RequirementCriterion{ID: "c1", ExigenciaID: "e1"},
			Definition: domain.RequirementDefinition{ID: "e1", Codigo: "EXT", Ordem: 1},
		},
	}, nil)
	f.companyReqRepo.On("ReplaceAll", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	saved, err := f.service.CreateCompany(context.Background(), validCreateInput())
	require.NoError(t, err)

	c := saved.Company
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "f-1", c.Divisao)
	assert.Equal(t, "F", c.Grupo) // derived, uppercased
	assert.Equal(t, "Um pavimento", c.AlturaDescricao)
	assert.Equal(t, domain.GradeMedio, c.GrauRisco) // 400 MJ/m² at 12 occupants

	// first sync always runs
	assert.True(t, saved.Resynced)
	require.Len(t, saved.Requirements, 1)
	assert.Equal(t, "e1", saved.Requirements[0].ExigenciaID)
	f.companyReqRepo.AssertExpectations(t)
}

func TestCreateCompany_UnknownCNAE(t *testing.T) {
	f := newCompanyServiceFixture()

	f.catalogRepo.On("GetActivityClassification", mock.Anything, "0000-0/00").
		Return(nil, domain.ErrNotFound)

	input := validCreateInput()
	input.CNAE = "0000-0/00"
	_, err := f.service.CreateCompany(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.companiesRepo.AssertNotCalled(t, "CreateCompany")
}

func TestCreateCompany_MissingFields(t *testing.T) {
	f := newCompanyServiceFixture()

	input := validCreateInput()
	input.RazaoSocial = ""
	_, err := f.service.CreateCompany(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	input = validCreateInput()
	input.AreaM2 = -5
	_, err = f.service.CreateCompany(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func storedCompany() *domain.Company {
	return &domain.Company{
		ID:                "emp-1",
		RazaoSocial:       "Padaria Central Ltda",
		CNPJ:              "12.345.678/0001-00",
		Responsavel:       "Maria Silva",
		Email:             "contato@padariacentral.com.br",
		Telefone:          "(11) 99999-0000",
		CNAE:              "1091-1/02",
		Grupo:             "F",
		OcupacaoUso:       "Comercial",
		Divisao:           "f-1",
		Descricao:         "Fabricação de produtos de padaria",
		CargaIncendioMJM2: 700,
		AlturaTipo:        "terrea",
		AlturaDenominacao: "Térrea",
		AlturaDescricao:   "Um pavimento",
		AreaM2:            180,
		NumeroOcupantes:   12,
		GrauRisco:         domain.GradeMedio,
	}
}

func TestUpdateCompany_DetailEditDoesNotResync(t *testing.T) {
	f := newCompanyServiceFixture()

	old := storedCompany()
	f.companiesRepo.On("GetCompany", mock.Anything, "emp-1").Return(old, nil)
	f.companiesRepo.On("UpdateCompany", mock.Anything, mock.Anything).Return(nil)

	saved, err := f.service.UpdateCompany(context.Background(), "emp-1", UpdateCompanyInput{
		RazaoSocial:  old.RazaoSocial,
		CNPJ:         old.CNPJ,
		Responsavel:  "João Souza", // contact change only
		Email:        old.Email,
		Telefone:     "(11) 98888-1111",
		AreaM2:       old.AreaM2,
		NumOcupantes: old.NumeroOcupantes,
	})
	require.NoError(t, err)

	assert.False(t, saved.Resynced)
	assert.Equal(t, "João Souza", saved.Company.Responsavel)
	f.companyReqRepo.AssertNotCalled(t, "ReplaceAll")
	f.reqRepo.AssertNotCalled(t, "FindCriteria")
}

func TestUpdateCompany_OccupantChangeRecomputesGradeWithoutResync(t *testing.T) {
	f := newCompanyServiceFixture()

	old := storedCompany()
	f.companiesRepo.On("GetCompany", mock.Anything, "emp-1").Return(old, nil)
	f.companiesRepo.On("UpdateCompany", mock.Anything, mock.Anything).Return(nil)

	saved, err := f.service.UpdateCompany(context.Background(), "emp-1", UpdateCompanyInput{
		RazaoSocial:  old.RazaoSocial,
		CNPJ:         old.CNPJ,
		Responsavel:  old.Responsavel,
		Email:        old.Email,
		Telefone:     old.Telefone,
		AreaM2:       old.AreaM2,
		NumOcupantes: 2000, // 700 MJ/m² at 2000 occupants crosses into alto
	})
	require.NoError(t, err)

	assert.Equal(t, domain.GradeAlto, saved.Company.GrauRisco)
	assert.False(t, saved.Resynced)
	f.companyReqRepo.AssertNotCalled(t, "ReplaceAll")
}

func TestUpdateCompany_AreaChangeTriggersResync(t *testing.T) {
	f := newCompanyServiceFixture()

	old := storedCompany()
	f.companiesRepo.On("GetCompany", mock.Anything, "emp-1").Return(old, nil)
	f.companiesRepo.On("UpdateCompany", mock.Anything, mock.Anything).Return(nil)

	f.catalogRepo.On("GetHeightReference", mock.Anything, "terrea").
		Return(&domain.HeightReference{Tipo: "terrea", Denominacao: "Térrea"}, nil)
	f.reqRepo.On("FindCriteria", mock.Anything, mock.Anything).Return([]repository.CriterionMatch{
		{
			Criterion:  domain.RequirementCriterion{ID: "c1", ExigenciaID: "e1"},
			Definition: domain.RequirementDefinition{ID: "e1", Codigo: "EXT", Ordem: 1},
		},
		{
			Criterion:  domain.RequirementCriterion{ID: "c2", ExigenciaID: "e2"},
			Definition: domain.RequirementDefinition{ID: "e2", Codigo: "HID", Ordem: 5},
		},
	}, nil)
	f.companyReqRepo.On("ReplaceAll", mock.Anything, "emp-1", mock.Anything).Return(nil)

	saved, err := f.service.UpdateCompany(context.Background(), "emp-1", UpdateCompanyInput{
		RazaoSocial:  old.RazaoSocial,
		CNPJ:         old.CNPJ,
		Responsavel:  old.Responsavel,
		Email:        old.Email,
		Telefone:     old.Telefone,
		AreaM2:       900,
		NumOcupantes: old.NumeroOcupantes,
	})
	require.NoError(t, err)

	assert.True(t, saved.Resynced)
	assert.Len(t, saved.Requirements, 2)
	f.companyReqRepo.AssertExpectations(t)
}

func TestUpdateCompany_HeightChangeReclassifiesAndResyncs(t *testing.T) {
	f := newCompanyServiceFixture()

	old := storedCompany()
	f.companiesRepo.On("GetCompany", mock.Anything, "emp-1").Return(old, nil)
	f.companiesRepo.On("UpdateCompany", mock.Anything, mock.Anything).Return(nil)

	f.catalogRepo.On("GetActivityClassification", mock.Anything, "1091-1/02").
		Return(&domain.ActivityClassification{
			CNAE:              "1091-1/02",
			Divisao:           "f-1",
			OcupacaoUso:       "Comercial",
			Descricao:         "Fabricação de produtos de padaria",
			CargaIncendioMJM2: 400,
		}, nil)
	f.catalogRepo.On("GetHeightReference", mock.Anything, "media").
		Return(&domain.HeightReference{Tipo: "media", Denominacao: "Média", HMinM: f64(6), HMaxM: f64(12)}, nil)
	f.reqRepo.On("FindCriteria", mock.Anything, mock.Anything).Return([]repository.CriterionMatch{}, nil)
	f.companyReqRepo.On("ReplaceAll", mock.Anything, "emp-1", mock.Anything).Return(nil)

	saved, err := f.service.UpdateCompany(context.Background(), "emp-1", UpdateCompanyInput{
		RazaoSocial:  old.RazaoSocial,
		CNPJ:         old.CNPJ,
		Responsavel:  old.Responsavel,
		Email:        old.Email,
		Telefone:     old.Telefone,
		AreaM2:       old.AreaM2,
		NumOcupantes: old.NumeroOcupantes,
		AlturaTipo:   "media",
	})
	require.NoError(t, err)

	assert.True(t, saved.Resynced)
	assert.Equal(t, "media", saved.Company.AlturaTipo)
	assert.Equal(t, "6 < H < 12 m", saved.Company.AlturaDescricao)
	f.companyReqRepo.AssertExpectations(t)
}
