package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router wraps the standard library http.ServeMux (no third-party routing
// dependency needed for this surface).
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterCompanyRoutes: company registration CRUD plus the nested
// requirement and checklist sub-resources.
func (r *Router) RegisterCompanyRoutes(companies *CompaniesHandler) {
	r.Handle("/api/v1/empresas", companies.ServeHTTP)
	r.Handle("/api/v1/empresas/", companies.ServeHTTP)
}

// RegisterCatalogRoutes: CNAE catalog search, height options, catalog
// refresh and the CEP address lookup.
func (r *Router) RegisterCatalogRoutes(catalog *CatalogHandler) {
	r.Handle("/api/v1/catalogo/cnae", catalog.ServeHTTP)
	r.Handle("/api/v1/catalogo/cnae/", catalog.ServeHTTP)
	r.Handle("/api/v1/catalogo/alturas", catalog.ServeHTTP)
	r.Handle("/api/v1/catalogo/refresh", catalog.ServeHTTP)
	r.Handle("/api/v1/cep/", catalog.ServeHTTP)
}

// RegisterRequirementRoutes: the resolution preview endpoint. Stored sets
// live under the company sub-resources.
func (r *Router) RegisterRequirementRoutes(requirements *RequirementsHandler) {
	r.Handle("/api/v1/exigencias/preview", requirements.Preview)
}

// RegisterChecklistRoutes: the checklist template.
func (r *Router) RegisterChecklistRoutes(checklists *ChecklistsHandler) {
	r.Handle("/api/v1/checklist", checklists.ListSections)
}

// RegisterHealthRoute liveness probe.
func (r *Router) RegisterHealthRoute() {
	r.Handle("/healthz", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, Ok("ok"))
	})
}
