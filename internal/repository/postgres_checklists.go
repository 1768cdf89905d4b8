package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// PostgresChecklistsRepository inspecoes / checklist_itens /
// empresa_checklist repository.
type PostgresChecklistsRepository struct {
	db *sql.DB
}

func NewPostgresChecklistsRepository(db *sql.DB) *PostgresChecklistsRepository {
	return &PostgresChecklistsRepository{db: db}
}

var _ ChecklistsRepository = (*PostgresChecklistsRepository)(nil)

func (r *PostgresChecklistsRepository) ListInspections(ctx context.Context) ([]domain.Inspection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id::text, codigo, nome, tipo, ordem
		FROM inspecoes
		ORDER BY ordem
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	defer rows.Close()

	var items []domain.Inspection
	for rows.Next() {
		var i domain.Inspection
		if err := rows.Scan(&i.ID, &i.Codigo, &i.Nome, &i.Tipo, &i.Ordem); err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate inspections: %w", err)
	}
	return items, nil
}

func (r *PostgresChecklistsRepository) ListItems(ctx context.Context) ([]domain.ChecklistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id::text, inspecao_id::text, item_numero, descricao, ordem
		FROM checklist_itens
		ORDER BY ordem
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer rows.Close()

	var items []domain.ChecklistItem
	for rows.Next() {
		var it domain.ChecklistItem
		if err := rows.Scan(&it.ID, &it.InspecaoID, &it.ItemNumero, &it.Descricao, &it.Ordem); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate checklist items: %w", err)
	}
	return items, nil
}

func (r *PostgresChecklistsRepository) ListAnswers(ctx context.Context, empresaID string) ([]domain.CompanyChecklist, error) {
	if empresaID == "" {
		return nil, fmt.Errorf("%w: empresa_id is required", domain.ErrInvalidInput)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id::text, empresa_id::text, checklist_item_id::text, status, observacoes, created_at, updated_at
		FROM empresa_checklist
		WHERE empresa_id = $1
	`, empresaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist answers: %w", err)
	}
	defer rows.Close()

	var answers []domain.CompanyChecklist
	for rows.Next() {
		var a domain.CompanyChecklist
		if err := rows.Scan(&a.ID, &a.EmpresaID, &a.ChecklistItemID, &a.Status, &a.Observacoes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan checklist answer: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate checklist answers: %w", err)
	}
	return answers, nil
}

func (r *PostgresChecklistsRepository) ReplaceAnswers(ctx context.Context, empresaID string, answers []domain.CompanyChecklist) error {
	if empresaID == "" {
		return fmt.Errorf("%w: empresa_id is required", domain.ErrInvalidInput)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM empresa_checklist WHERE empresa_id = $1`, empresaID,
	); err != nil {
		return fmt.Errorf("failed to delete previous answers: %w", err)
	}

	insert := `
		INSERT INTO empresa_checklist (id, empresa_id, checklist_item_id, status, observacoes)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, a := range answers {
		if _, err := tx.ExecContext(ctx, insert,
			a.ID, empresaID, a.ChecklistItemID, string(a.Status), a.Observacoes,
		); err != nil {
			return fmt.Errorf("failed to insert checklist answer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checklist answers: %w", err)
	}
	return nil
}
