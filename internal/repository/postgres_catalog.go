package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// PostgresCatalogRepository catalog repository over cnae_catalogo and
// altura_ref.
type PostgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

var _ CatalogRepository = (*PostgresCatalogRepository)(nil)

func (r *PostgresCatalogRepository) GetActivityClassification(ctx context.Context, cnae string) (*domain.ActivityClassification, error) {
	if cnae == "" {
		return nil, domain.ErrNotFound
	}

	query := `
		SELECT cnae, grupo, ocupacao_uso, divisao, descricao, carga_incendio_mj_m2
		FROM cnae_catalogo
		WHERE cnae = $1
	`

	var ac domain.ActivityClassification
	err := r.db.QueryRowContext(ctx, query, cnae).Scan(
		&ac.CNAE,
		&ac.Grupo,
		&ac.OcupacaoUso,
		&ac.Divisao,
		&ac.Descricao,
		&ac.CargaIncendioMJM2,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cnae classification: %w", err)
	}

	return &ac, nil
}

func (r *PostgresCatalogRepository) ListActivityClassifications(ctx context.Context) ([]domain.ActivityClassification, error) {
	query := `
		SELECT cnae, grupo, ocupacao_uso, divisao, descricao, carga_incendio_mj_m2
		FROM cnae_catalogo
		ORDER BY cnae
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cnae catalog: %w", err)
	}
	defer rows.Close()

	var items []domain.ActivityClassification
	for rows.Next() {
		var ac domain.ActivityClassification
		if err := rows.Scan(
			&ac.CNAE,
			&ac.Grupo,
			&ac.OcupacaoUso,
			&ac.Divisao,
			&ac.Descricao,
			&ac.CargaIncendioMJM2,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cnae row: %w", err)
		}
		items = append(items, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cnae rows: %w", err)
	}

	return items, nil
}

func (r *PostgresCatalogRepository) ListHeightReferences(ctx context.Context) ([]domain.HeightReference, error) {
	query := `
		SELECT tipo, denominacao, h_min_m, h_max_m
		FROM altura_ref
		ORDER BY tipo
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list height references: %w", err)
	}
	defer rows.Close()

	var refs []domain.HeightReference
	for rows.Next() {
		var ref domain.HeightReference
		if err := rows.Scan(&ref.Tipo, &ref.Denominacao, &ref.HMinM, &ref.HMaxM); err != nil {
			return nil, fmt.Errorf("failed to scan height reference: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate height references: %w", err)
	}

	return refs, nil
}

func (r *PostgresCatalogRepository) GetHeightReference(ctx context.Context, tipo string) (*domain.HeightReference, error) {
	if tipo == "" {
		return nil, domain.ErrNotFound
	}

	query := `
		SELECT tipo, denominacao, h_min_m, h_max_m
		FROM altura_ref
		WHERE tipo = $1
	`

	var ref domain.HeightReference
	err := r.db.QueryRowContext(ctx, query, tipo).Scan(&ref.Tipo, &ref.Denominacao, &ref.HMinM, &ref.HMaxM)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get height reference: %w", err)
	}

	return &ref, nil
}

func (r *PostgresCatalogRepository) ReplaceActivityClassifications(ctx context.Context, items []domain.ActivityClassification) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cnae_catalogo`); err != nil {
		return fmt.Errorf("failed to clear cnae catalog: %w", err)
	}

	insert := `
		INSERT INTO cnae_catalogo (cnae, grupo, ocupacao_uso, divisao, descricao, carga_incendio_mj_m2)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, ac := range items {
		if _, err := tx.ExecContext(ctx, insert,
			ac.CNAE, ac.Grupo, ac.OcupacaoUso, ac.Divisao, ac.Descricao, ac.CargaIncendioMJM2,
		); err != nil {
			return fmt.Errorf("failed to insert cnae %s: %w", ac.CNAE, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cnae catalog replace: %w", err)
	}
	return nil
}

func (r *PostgresCatalogRepository) UpsertHeightReferences(ctx context.Context, items []domain.HeightReference) error {
	upsert := `
		INSERT INTO altura_ref (tipo, denominacao, h_min_m, h_max_m)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tipo) DO UPDATE SET
			denominacao = EXCLUDED.denominacao,
			h_min_m = EXCLUDED.h_min_m,
			h_max_m = EXCLUDED.h_max_m
	`
	for _, ref := range items {
		if _, err := r.db.ExecContext(ctx, upsert, ref.Tipo, ref.Denominacao, ref.HMinM, ref.HMaxM); err != nil {
			return fmt.Errorf("failed to upsert height reference %s: %w", ref.Tipo, err)
		}
	}
	return nil
}
