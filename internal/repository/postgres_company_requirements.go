package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// PostgresCompanyRequirementsRepository empresa_exigencias repository.
type PostgresCompanyRequirementsRepository struct {
	db *sql.DB
}

func NewPostgresCompanyRequirementsRepository(db *sql.DB) *PostgresCompanyRequirementsRepository {
	return &PostgresCompanyRequirementsRepository{db: db}
}

var _ CompanyRequirementsRepository = (*PostgresCompanyRequirementsRepository)(nil)

func (r *PostgresCompanyRequirementsRepository) ListByCompany(ctx context.Context, empresaID string) ([]CompanyRequirementRow, error) {
	if empresaID == "" {
		return nil, fmt.Errorf("%w: empresa_id is required", domain.ErrInvalidInput)
	}

	query := `
		SELECT
			ce.id::text, ce.empresa_id::text, ce.exigencia_id::text,
			ce.atende, ce.observacoes, ce.created_at, ce.updated_at,
			e.id::text, e.codigo, e.nome, e.categoria, e.subcategoria, e.ordem
		FROM empresa_exigencias ce
		INNER JOIN exigencias_seguranca e ON e.id = ce.exigencia_id
		WHERE ce.empresa_id = $1
		ORDER BY e.ordem
	`

	rows, err := r.db.QueryContext(ctx, query, empresaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company requirements: %w", err)
	}
	defer rows.Close()

	var result []CompanyRequirementRow
	for rows.Next() {
		var row CompanyRequirementRow
		if err := rows.Scan(
			&row.Record.ID,
			&row.Record.EmpresaID,
			&row.Record.ExigenciaID,
			&row.Record.Atende,
			&row.Record.Observacoes,
			&row.Record.CreatedAt,
			&row.Record.UpdatedAt,
			&row.Definition.ID,
			&row.Definition.Codigo,
			&row.Definition.Nome,
			&row.Definition.Categoria,
			&row.Definition.Subcategoria,
			&row.Definition.Ordem,
		); err != nil {
			return nil, fmt.Errorf("failed to scan company requirement: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate company requirements: %w", err)
	}

	return result, nil
}

// ReplaceAll swaps a company's requirement set in one transaction. A failure
// at any step rolls back, so readers never observe a half-replaced set.
func (r *PostgresCompanyRequirementsRepository) ReplaceAll(ctx context.Context, empresaID string, records []domain.CompanyRequirement) error {
	if empresaID == "" {
		return fmt.Errorf("%w: empresa_id is required", domain.ErrInvalidInput)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", domain.ErrResyncFailed, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM empresa_exigencias WHERE empresa_id = $1`, empresaID,
	); err != nil {
		return fmt.Errorf("%w: failed to delete previous records: %v", domain.ErrResyncFailed, err)
	}

	insert := `
		INSERT INTO empresa_exigencias (id, empresa_id, exigencia_id, atende, observacoes)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, insert,
			rec.ID, empresaID, rec.ExigenciaID, rec.Atende, rec.Observacoes,
		); err != nil {
			return fmt.Errorf("%w: failed to insert record for requirement %s: %v",
				domain.ErrResyncFailed, rec.ExigenciaID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit: %v", domain.ErrResyncFailed, err)
	}
	return nil
}
