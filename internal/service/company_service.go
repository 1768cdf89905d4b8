package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
)

// CreateCompanyInput registration form payload.
type CreateCompanyInput struct {
	RazaoSocial  string  `json:"razao_social"`
	NomeFantasia string  `json:"nome_fantasia"`
	CNPJ         string  `json:"cnpj"`
	Responsavel  string  `json:"responsavel"`
	Email        string  `json:"email"`
	Telefone     string  `json:"telefone"`
	CEP          string  `json:"cep"`
	Rua          string  `json:"rua"`
	Numero       string  `json:"numero"`
	Bairro       string  `json:"bairro"`
	Cidade       string  `json:"cidade"`
	Estado       string  `json:"estado"`
	CNAE         string  `json:"cnae"`
	AlturaTipo   string  `json:"altura_tipo"`
	AreaM2       float64 `json:"area_m2"`
	NumOcupantes int     `json:"numero_ocupantes"`
}

// UpdateCompanyInput edit payload. CNAE and AlturaTipo are optional; when
// set they reclassify the company. Everything else always overwrites.
type UpdateCompanyInput struct {
	RazaoSocial  string  `json:"razao_social"`
	NomeFantasia string  `json:"nome_fantasia"`
	CNPJ         string  `json:"cnpj"`
	Responsavel  string  `json:"responsavel"`
	Email        string  `json:"email"`
	Telefone     string  `json:"telefone"`
	AreaM2       float64 `json:"area_m2"`
	NumOcupantes int     `json:"numero_ocupantes"`
	CNAE         string  `json:"cnae,omitempty"`
	AlturaTipo   string  `json:"altura_tipo,omitempty"`
}

// SaveResult a company write plus what the requirement sync did.
type SaveResult struct {
	Company      *domain.Company
	Resynced     bool
	Requirements []domain.CompanyRequirement
	Warning      string
}

// CompanyService orchestrates the registration workflow: classification from
// the CNAE catalog, risk-grade derivation, persistence, and requirement
// synchronization on the triggering changes.
type CompanyService struct {
	companiesRepo repository.CompaniesRepository
	catalogRepo   repository.CatalogRepository
	resolver      *Resolver
	synchronizer  *Synchronizer
	logger        *zap.Logger
}

func NewCompanyService(
	companiesRepo repository.CompaniesRepository,
	catalogRepo repository.CatalogRepository,
	resolver *Resolver,
	synchronizer *Synchronizer,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companiesRepo: companiesRepo,
		catalogRepo:   catalogRepo,
		resolver:      resolver,
		synchronizer:  synchronizer,
		logger:        logger,
	}
}

// CreateCompany registers a company and runs the first requirement sync
// unconditionally (a valid classification is mandatory at creation).
func (s *CompanyService) CreateCompany(ctx context.Context, input CreateCompanyInput) (*SaveResult, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	company := &domain.Company{
		ID:           uuid.NewString(),
		RazaoSocial:  input.RazaoSocial,
		NomeFantasia: input.NomeFantasia,
		CNPJ:         input.CNPJ,
		Responsavel:  input.Responsavel,
		Email:        input.Email,
		Telefone:     input.Telefone,
		CEP:          input.CEP,
		Rua:          input.Rua,
		Numero:       input.Numero,
		Bairro:       input.Bairro,
		Cidade:       input.Cidade,
		Estado:       input.Estado,
		AreaM2:       input.AreaM2,
	}
	company.NumeroOcupantes = input.NumOcupantes

	if err := s.classify(ctx, company, input.CNAE, input.AlturaTipo); err != nil {
		return nil, err
	}

	if err := s.companiesRepo.CreateCompany(ctx, company); err != nil {
		return nil, err
	}

	resolution, err := s.resolver.Resolve(ctx, company.Profile())
	if err != nil {
		return nil, err
	}
	records, err := s.synchronizer.Sync(ctx, company.ID, resolution.Requirements)
	if err != nil {
		return nil, err
	}

	s.logger.Info("company registered",
		zap.String("empresa_id", company.ID),
		zap.String("divisao", company.Divisao),
		zap.String("grau_risco", string(company.GrauRisco)),
		zap.Int("requirement_count", len(records)),
	)

	return &SaveResult{
		Company:      company,
		Resynced:     true,
		Requirements: records,
		Warning:      resolution.Warning,
	}, nil
}

// UpdateCompany applies an edit. The risk grade is recomputed whenever fire
// load or occupants changed; the requirement set is resynchronized only when
// division, area or height classification changed.
func (s *CompanyService) UpdateCompany(ctx context.Context, id string, input UpdateCompanyInput) (*SaveResult, error) {
	if input.AreaM2 < 0 {
		return nil, fmt.Errorf("%w: area must not be negative", domain.ErrInvalidInput)
	}
	if input.NumOcupantes < 0 {
		return nil, fmt.Errorf("%w: occupant count must not be negative", domain.ErrInvalidInput)
	}

	old, err := s.companiesRepo.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	updated.RazaoSocial = input.RazaoSocial
	updated.NomeFantasia = input.NomeFantasia
	updated.CNPJ = input.CNPJ
	updated.Responsavel = input.Responsavel
	updated.Email = input.Email
	updated.Telefone = input.Telefone
	updated.AreaM2 = input.AreaM2
	updated.NumeroOcupantes = input.NumOcupantes

	cnae := old.CNAE
	if input.CNAE != "" {
		cnae = input.CNAE
	}
	alturaTipo := old.AlturaTipo
	if input.AlturaTipo != "" {
		alturaTipo = input.AlturaTipo
	}
	if cnae != old.CNAE || alturaTipo != old.AlturaTipo {
		if err := s.classify(ctx, &updated, cnae, alturaTipo); err != nil {
			return nil, err
		}
	} else {
		// grau_risco is a cached derivation of (fire load, occupants)
		updated.GrauRisco = ComputeRiskGrade(updated.CargaIncendioMJM2, updated.NumeroOcupantes)
	}

	if err := s.companiesRepo.UpdateCompany(ctx, &updated); err != nil {
		return nil, err
	}

	result := &SaveResult{Company: &updated}
	if !domain.ResyncTriggered(old, &updated) {
		return result, nil
	}

	resolution, err := s.resolver.Resolve(ctx, updated.Profile())
	if err != nil {
		return nil, err
	}
	records, err := s.synchronizer.Sync(ctx, updated.ID, resolution.Requirements)
	if err != nil {
		return nil, err
	}

	result.Resynced = true
	result.Requirements = records
	result.Warning = resolution.Warning
	return result, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.companiesRepo.GetCompany(ctx, id)
}

func (s *CompanyService) ListCompanies(ctx context.Context, filters repository.CompanyFilters, page, size int) ([]*domain.Company, int, error) {
	return s.companiesRepo.ListCompanies(ctx, filters, page, size)
}

func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	return s.companiesRepo.DeleteCompany(ctx, id)
}

// classify denormalizes the CNAE classification and height reference onto
// the company and recomputes the grade.
func (s *CompanyService) classify(ctx context.Context, company *domain.Company, cnae, alturaTipo string) error {
	ac, err := s.catalogRepo.GetActivityClassification(ctx, cnae)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: unknown cnae %q", domain.ErrInvalidInput, cnae)
		}
		return err
	}
	ref, err := s.catalogRepo.GetHeightReference(ctx, alturaTipo)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: unknown altura_tipo %q", domain.ErrInvalidInput, alturaTipo)
		}
		return err
	}

	company.CNAE = ac.CNAE
	company.Grupo = domain.GroupFromDivision(ac.Divisao)
	company.OcupacaoUso = ac.OcupacaoUso
	company.Divisao = ac.Divisao
	company.Descricao = ac.Descricao
	company.CargaIncendioMJM2 = ac.CargaIncendioMJM2

	company.AlturaTipo = ref.Tipo
	company.AlturaDenominacao = ref.Denominacao
	company.AlturaDescricao = DescribeHeight(ref)

	company.GrauRisco = ComputeRiskGrade(company.CargaIncendioMJM2, company.NumeroOcupantes)
	return nil
}

func validateCreate(input CreateCompanyInput) error {
	switch {
	case input.RazaoSocial == "":
		return fmt.Errorf("%w: razao_social is required", domain.ErrInvalidInput)
	case input.CNPJ == "":
		return fmt.Errorf("%w: cnpj is required", domain.ErrInvalidInput)
	case input.Responsavel == "":
		return fmt.Errorf("%w: responsavel is required", domain.ErrInvalidInput)
	case input.CNAE == "":
		return fmt.Errorf("%w: cnae is required", domain.ErrInvalidInput)
	case input.AlturaTipo == "":
		return fmt.Errorf("%w: altura_tipo is required", domain.ErrInvalidInput)
	case input.AreaM2 < 0:
		return fmt.Errorf("%w: area must not be negative", domain.ErrInvalidInput)
	case input.NumOcupantes < 0:
		return fmt.Errorf("%w: occupant count must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
