package repository

import (
	"context"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// ChecklistsRepository renewal-inspection checklist store. Answers are
// written whole per company, same replace-all shape as the requirement set.
type ChecklistsRepository interface {
	ListInspections(ctx context.Context) ([]domain.Inspection, error)
	ListItems(ctx context.Context) ([]domain.ChecklistItem, error)
	ListAnswers(ctx context.Context, empresaID string) ([]domain.CompanyChecklist, error)
	ReplaceAnswers(ctx context.Context, empresaID string, answers []domain.CompanyChecklist) error
}
