package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/service"
)

// ChecklistsHandler renewal-inspection checklist template and answers.
type ChecklistsHandler struct {
	checklistService *service.ChecklistService
	logger           *zap.Logger
}

func NewChecklistsHandler(checklistService *service.ChecklistService, logger *zap.Logger) *ChecklistsHandler {
	return &ChecklistsHandler{
		checklistService: checklistService,
		logger:           logger,
	}
}

func (h *ChecklistsHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sections, err := h.checklistService.ListSections(r.Context())
	if err != nil {
		h.logger.Error("failed to list checklist sections", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(sections))
}

func (h *ChecklistsHandler) ListAnswers(w http.ResponseWriter, r *http.Request, empresaID string) {
	answers, err := h.checklistService.ListAnswers(r.Context(), empresaID)
	if err != nil {
		h.logger.Error("failed to list checklist answers", zap.Error(err), zap.String("empresa_id", empresaID))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(answers))
}

func (h *ChecklistsHandler) SaveAnswers(w http.ResponseWriter, r *http.Request, empresaID string) {
	var inputs []service.ChecklistAnswerInput
	if err := readBodyJSON(r, maxBodyBytes, &inputs); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}

	answers, err := h.checklistService.SaveAnswers(r.Context(), empresaID, inputs)
	if err != nil {
		h.logger.Error("failed to save checklist answers", zap.Error(err), zap.String("empresa_id", empresaID))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(answers))
}
