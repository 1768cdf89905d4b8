package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// PostgresRequirementsRepository requirement catalog over
// exigencias_seguranca and exigencias_criterios.
type PostgresRequirementsRepository struct {
	db *sql.DB
}

func NewPostgresRequirementsRepository(db *sql.DB) *PostgresRequirementsRepository {
	return &PostgresRequirementsRepository{db: db}
}

var _ RequirementsRepository = (*PostgresRequirementsRepository)(nil)

func (r *PostgresRequirementsRepository) ListAll(ctx context.Context) ([]domain.RequirementDefinition, error) {
	query := `
		SELECT id::text, codigo, nome, categoria, subcategoria, ordem
		FROM exigencias_seguranca
		ORDER BY ordem
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list requirements: %w", err)
	}
	defer rows.Close()

	return scanDefinitions(rows)
}

func (r *PostgresRequirementsRepository) FindByCodes(ctx context.Context, codes []string) ([]domain.RequirementDefinition, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	query := `
		SELECT id::text, codigo, nome, categoria, subcategoria, ordem
		FROM exigencias_seguranca
		WHERE codigo = ANY($1)
		ORDER BY ordem
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(codes))
	if err != nil {
		return nil, fmt.Errorf("failed to find requirements by code: %w", err)
	}
	defer rows.Close()

	return scanDefinitions(rows)
}

// FindCriteria returns criteria rows matching the profile, each joined with
// its requirement definition. Open-ended bounds: a NULL area_max means "no
// upper limit".
func (r *PostgresRequirementsRepository) FindCriteria(ctx context.Context, filter CriteriaFilter) ([]CriterionMatch, error) {
	if filter.Divisao == "" {
		return nil, fmt.Errorf("%w: divisao is required", domain.ErrInvalidInput)
	}

	where := []string{
		"c.divisao = $1",
		"(c.area_min IS NULL OR c.area_min <= $2)",
		"(c.area_max IS NULL OR c.area_max >= $2)",
	}
	args := []any{filter.Divisao, filter.AreaM2}

	if filter.MatchHeight && filter.AlturaTipo != "" {
		where = append(where, "(c.altura_tipo IS NULL OR c.altura_tipo = $3)")
		args = append(args, filter.AlturaTipo)
	}

	query := fmt.Sprintf(`
		SELECT
			c.id::text, c.exigencia_id::text, c.divisao, c.altura_tipo,
			c.area_min, c.area_max, c.altura_min, c.altura_max, c.observacao,
			e.id::text, e.codigo, e.nome, e.categoria, e.subcategoria, e.ordem
		FROM exigencias_criterios c
		INNER JOIN exigencias_seguranca e ON e.id = c.exigencia_id
		WHERE %s
		ORDER BY e.ordem
	`, strings.Join(where, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query criteria: %w", err)
	}
	defer rows.Close()

	var matches []CriterionMatch
	for rows.Next() {
		var m CriterionMatch
		if err := rows.Scan(
			&m.Criterion.ID,
			&m.Criterion.ExigenciaID,
			&m.Criterion.Divisao,
			&m.Criterion.AlturaTipo,
			&m.Criterion.AreaMin,
			&m.Criterion.AreaMax,
			&m.Criterion.AlturaMin,
			&m.Criterion.AlturaMax,
			&m.Criterion.Observacao,
			&m.Definition.ID,
			&m.Definition.Codigo,
			&m.Definition.Nome,
			&m.Definition.Categoria,
			&m.Definition.Subcategoria,
			&m.Definition.Ordem,
		); err != nil {
			return nil, fmt.Errorf("failed to scan criterion: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate criteria: %w", err)
	}

	return matches, nil
}

func (r *PostgresRequirementsRepository) UpsertDefinition(ctx context.Context, def *domain.RequirementDefinition) error {
	query := `
		INSERT INTO exigencias_seguranca (id, codigo, nome, categoria, subcategoria, ordem)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (codigo) DO UPDATE SET
			nome = EXCLUDED.nome,
			categoria = EXCLUDED.categoria,
			subcategoria = EXCLUDED.subcategoria,
			ordem = EXCLUDED.ordem
	`
	if _, err := r.db.ExecContext(ctx, query,
		def.ID, def.Codigo, def.Nome, def.Categoria, def.Subcategoria, def.Ordem,
	); err != nil {
		return fmt.Errorf("failed to upsert requirement %s: %w", def.Codigo, err)
	}
	return nil
}

func (r *PostgresRequirementsRepository) InsertCriterion(ctx context.Context, c *domain.RequirementCriterion) error {
	query := `
		INSERT INTO exigencias_criterios
			(id, exigencia_id, divisao, altura_tipo, area_min, area_max, altura_min, altura_max, observacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := r.db.ExecContext(ctx, query,
		c.ID, c.ExigenciaID, c.Divisao, c.AlturaTipo,
		c.AreaMin, c.AreaMax, c.AlturaMin, c.AlturaMax, c.Observacao,
	); err != nil {
		return fmt.Errorf("failed to insert criterion: %w", err)
	}
	return nil
}

func scanDefinitions(rows *sql.Rows) ([]domain.RequirementDefinition, error) {
	var defs []domain.RequirementDefinition
	for rows.Next() {
		var d domain.RequirementDefinition
		if err := rows.Scan(&d.ID, &d.Codigo, &d.Nome, &d.Categoria, &d.Subcategoria, &d.Ordem); err != nil {
			return nil, fmt.Errorf("failed to scan requirement: %w", err)
		}
		defs = append(defs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate requirements: %w", err)
	}
	return defs, nil
}
