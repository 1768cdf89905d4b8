package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/service"
)

// RequirementsHandler stored requirement sets and the resolution preview.
type RequirementsHandler struct {
	requirementsService *service.RequirementsService
	logger              *zap.Logger
}

func NewRequirementsHandler(requirementsService *service.RequirementsService, logger *zap.Logger) *RequirementsHandler {
	return &RequirementsHandler{
		requirementsService: requirementsService,
		logger:              logger,
	}
}

func (h *RequirementsHandler) ListByCompany(w http.ResponseWriter, r *http.Request, empresaID string) {
	rows, err := h.requirementsService.ListByCompany(r.Context(), empresaID)
	if err != nil {
		h.logger.Error("failed to list company requirements", zap.Error(err), zap.String("empresa_id", empresaID))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(rows))
}

func (h *RequirementsHandler) SaveAssessments(w http.ResponseWriter, r *http.Request, empresaID string) {
	var inputs []service.AssessmentInput
	if err := readBodyJSON(r, maxBodyBytes, &inputs); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	if err := h.requirementsService.SaveAssessments(r.Context(), empresaID, inputs); err != nil {
		h.logger.Error("failed to save assessments", zap.Error(err), zap.String("empresa_id", empresaID))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok[any](nil))
}

type previewRequest struct {
	Divisao           string  `json:"divisao"`
	AlturaTipo        string  `json:"altura_tipo"`
	AlturaDenominacao string  `json:"altura_denominacao"`
	AreaM2            float64 `json:"area_m2"`
}

type previewResult struct {
	Exigencias []domain.RequirementDefinition `json:"exigencias"`
	Source     string                         `json:"source"`
}

// Preview resolves a hypothetical profile without persisting anything.
func (h *RequirementsHandler) Preview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req previewRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	resolution, err := h.requirementsService.Preview(r.Context(), domain.ResolutionProfile{
		Divisao:           req.Divisao,
		AlturaTipo:        req.AlturaTipo,
		AlturaDenominacao: req.AlturaDenominacao,
		AreaM2:            req.AreaM2,
	})
	if err != nil {
		h.logger.Error("failed to preview requirements", zap.Error(err))
		writeError(w, err)
		return
	}

	result := previewResult{
		Exigencias: resolution.Requirements,
		Source:     string(resolution.Source),
	}
	if resolution.Warning != "" {
		writeJSON(w, http.StatusOK, Warn(result, resolution.Warning))
		return
	}
	writeJSON(w, http.StatusOK, Ok(result))
}
