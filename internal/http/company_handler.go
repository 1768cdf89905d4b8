package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
	"github.com/nanoink/sistema-inspecao-incendio/internal/service"
)

const maxBodyBytes = 1 << 20

// CompaniesHandler company registration CRUD plus the per-company
// requirement and checklist sub-resources.
type CompaniesHandler struct {
	companyService *service.CompanyService
	requirements   *RequirementsHandler
	checklists     *ChecklistsHandler
	logger         *zap.Logger
}

func NewCompaniesHandler(
	companyService *service.CompanyService,
	requirements *RequirementsHandler,
	checklists *ChecklistsHandler,
	logger *zap.Logger,
) *CompaniesHandler {
	return &CompaniesHandler{
		companyService: companyService,
		requirements:   requirements,
		checklists:     checklists,
		logger:         logger,
	}
}

func (h *CompaniesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/v1/empresas" {
		switch r.Method {
		case http.MethodGet:
			h.List(w, r)
		case http.MethodPost:
			h.Create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/empresas/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch sub {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.Get(w, r, id)
		case http.MethodPut:
			h.Update(w, r, id)
		case http.MethodDelete:
			h.Delete(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case "exigencias":
		switch r.Method {
		case http.MethodGet:
			h.requirements.ListByCompany(w, r, id)
		case http.MethodPut:
			h.requirements.SaveAssessments(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case "checklist":
		switch r.Method {
		case http.MethodGet:
			h.checklists.ListAnswers(w, r, id)
		case http.MethodPut:
			h.checklists.SaveAnswers(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type companyListResult struct {
	Items []any `json:"items"`
	Total int   `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

func (h *CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filters := repository.CompanyFilters{
		Search:    q.Get("search"),
		Divisao:   q.Get("divisao"),
		GrauRisco: q.Get("grau_risco"),
	}
	page := parseInt(q.Get("page"), 1)
	size := parseInt(q.Get("size"), 20)

	companies, total, err := h.companyService.ListCompanies(ctx, filters, page, size)
	if err != nil {
		h.logger.Error("failed to list companies", zap.Error(err))
		writeError(w, err)
		return
	}

	items := make([]any, 0, len(companies))
	for _, c := range companies {
		items = append(items, c)
	}
	writeJSON(w, http.StatusOK, Ok(companyListResult{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}))
}

// saveCompanyResult company payload plus the outcome of the requirement
// sync that may have run alongside the write.
type saveCompanyResult struct {
	Empresa    any  `json:"empresa"`
	Resynced   bool `json:"resynced"`
	Exigencias any  `json:"exigencias,omitempty"`
}

func (h *CompaniesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input service.CreateCompanyInput
	if err := readBodyJSON(r, maxBodyBytes, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	saved, err := h.companyService.CreateCompany(ctx, input)
	if err != nil {
		h.logger.Error("failed to create company", zap.Error(err))
		writeError(w, err)
		return
	}

	result := saveCompanyResult{
		Empresa:    saved.Company,
		Resynced:   saved.Resynced,
		Exigencias: saved.Requirements,
	}
	if saved.Warning != "" {
		writeJSON(w, http.StatusCreated, Warn(result, saved.Warning))
		return
	}
	writeJSON(w, http.StatusCreated, Ok(result))
}

func (h *CompaniesHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	company, err := h.companyService.GetCompany(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(company))
}

func (h *CompaniesHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()

	var input service.UpdateCompanyInput
	if err := readBodyJSON(r, maxBodyBytes, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	saved, err := h.companyService.UpdateCompany(ctx, id, input)
	if err != nil {
		h.logger.Error("failed to update company", zap.Error(err), zap.String("empresa_id", id))
		writeError(w, err)
		return
	}

	result := saveCompanyResult{
		Empresa:  saved.Company,
		Resynced: saved.Resynced,
	}
	if saved.Resynced {
		result.Exigencias = saved.Requirements
	}
	if saved.Warning != "" {
		writeJSON(w, http.StatusOK, Warn(result, saved.Warning))
		return
	}
	writeJSON(w, http.StatusOK, Ok(result))
}

func (h *CompaniesHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.companyService.DeleteCompany(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok[any](nil))
}
