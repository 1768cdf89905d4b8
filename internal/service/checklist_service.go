package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
	"github.com/nanoink/sistema-inspecao-incendio/internal/repository"
)

// ChecklistAnswerInput one answer in a checklist save.
type ChecklistAnswerInput struct {
	ChecklistItemID string  `json:"checklist_item_id"`
	Status          string  `json:"status"`
	Observacoes     *string `json:"observacoes,omitempty"`
}

// InspectionSection an inspection category together with its ordered items.
type InspectionSection struct {
	Inspection domain.Inspection      `json:"inspecao"`
	Items      []domain.ChecklistItem `json:"itens"`
}

// ChecklistService renewal-inspection checklists. Independent of the
// requirement derivation engine; shares only the company reference.
type ChecklistService struct {
	repo   repository.ChecklistsRepository
	logger *zap.Logger
}

func NewChecklistService(repo repository.ChecklistsRepository, logger *zap.Logger) *ChecklistService {
	return &ChecklistService{repo: repo, logger: logger}
}

// ListSections returns the full checklist template grouped by inspection
// category, both levels in catalog order.
func (s *ChecklistService) ListSections(ctx context.Context) ([]InspectionSection, error) {
	inspections, err := s.repo.ListInspections(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	byInspection := make(map[string][]domain.ChecklistItem, len(inspections))
	for _, item := range items {
		byInspection[item.InspecaoID] = append(byInspection[item.InspecaoID], item)
	}

	sections := make([]InspectionSection, 0, len(inspections))
	for _, insp := range inspections {
		sections = append(sections, InspectionSection{
			Inspection: insp,
			Items:      byInspection[insp.ID],
		})
	}
	return sections, nil
}

func (s *ChecklistService) ListAnswers(ctx context.Context, empresaID string) ([]domain.CompanyChecklist, error) {
	if empresaID == "" {
		return nil, fmt.Errorf("%w: empresa_id is required", domain.ErrInvalidInput)
	}
	return s.repo.ListAnswers(ctx, empresaID)
}

// SaveAnswers replaces the company's checklist answers whole. Unknown
// statuses are rejected before anything is written.
func (s *ChecklistService) SaveAnswers(ctx context.Context, empresaID string, inputs []ChecklistAnswerInput) ([]domain.CompanyChecklist, error) {
	if empresaID == "" {
		return nil, fmt.Errorf("%w: empresa_id is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	answers := make([]domain.CompanyChecklist, 0, len(inputs))
	for _, in := range inputs {
		status := domain.ChecklistStatus(in.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("%w: invalid checklist status %q", domain.ErrInvalidInput, in.Status)
		}
		if in.ChecklistItemID == "" {
			return nil, fmt.Errorf("%w: checklist_item_id is required", domain.ErrInvalidInput)
		}
		answers = append(answers, domain.CompanyChecklist{
			ID:              uuid.NewString(),
			EmpresaID:       empresaID,
			ChecklistItemID: in.ChecklistItemID,
			Status:          status,
			Observacoes:     in.Observacoes,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	if err := s.repo.ReplaceAnswers(ctx, empresaID, answers); err != nil {
		return nil, err
	}

	s.logger.Info("checklist answers saved",
		zap.String("empresa_id", empresaID),
		zap.Int("answer_count", len(answers)),
	)
	return answers, nil
}
