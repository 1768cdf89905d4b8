package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/client"
	"github.com/nanoink/sistema-inspecao-incendio/internal/service"
)

// CatalogHandler CNAE catalog reads, height options, catalog refresh and
// the CEP address lookup backing the registration form.
type CatalogHandler struct {
	catalogService *service.CatalogService
	viaCEP         *client.ViaCEPClient
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService *service.CatalogService, viaCEP *client.ViaCEPClient, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		viaCEP:         viaCEP,
		logger:         logger,
	}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/catalogo/cnae" && r.Method == http.MethodGet:
		h.SearchCNAE(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/catalogo/cnae/") && r.Method == http.MethodGet:
		code := strings.TrimPrefix(r.URL.Path, "/api/v1/catalogo/cnae/")
		h.GetCNAE(w, r, code)
	case r.URL.Path == "/api/v1/catalogo/alturas" && r.Method == http.MethodGet:
		h.ListHeights(w, r)
	case r.URL.Path == "/api/v1/catalogo/refresh" && r.Method == http.MethodPost:
		h.Refresh(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/cep/") && r.Method == http.MethodGet:
		cep := strings.TrimPrefix(r.URL.Path, "/api/v1/cep/")
		h.LookupCEP(w, r, cep)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *CatalogHandler) SearchCNAE(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	items, err := h.catalogService.SearchClassifications(r.Context(), query)
	if err != nil {
		h.logger.Error("failed to search cnae catalog", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(items))
}

func (h *CatalogHandler) GetCNAE(w http.ResponseWriter, r *http.Request, code string) {
	item, err := h.catalogService.GetClassification(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(item))
}

func (h *CatalogHandler) ListHeights(w http.ResponseWriter, r *http.Request) {
	options, err := h.catalogService.ListHeightOptions(r.Context())
	if err != nil {
		h.logger.Error("failed to list height options", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(options))
}

type refreshResult struct {
	Imported int `json:"imported"`
}

func (h *CatalogHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalogService.RefreshCatalog(r.Context())
	if err != nil {
		h.logger.Error("failed to refresh cnae catalog", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(refreshResult{Imported: count}))
}

func (h *CatalogHandler) LookupCEP(w http.ResponseWriter, r *http.Request, cep string) {
	address, err := h.viaCEP.Lookup(r.Context(), cep)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(address))
}
