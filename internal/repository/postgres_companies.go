package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

// PostgresCompaniesRepository empresa repository.
type PostgresCompaniesRepository struct {
	db *sql.DB
}

func NewPostgresCompaniesRepository(db *sql.DB) *PostgresCompaniesRepository {
	return &PostgresCompaniesRepository{db: db}
}

var _ CompaniesRepository = (*PostgresCompaniesRepository)(nil)

const companyColumns = `
	id::text, razao_social, nome_fantasia, cnpj, responsavel, email, telefone,
	cep, rua, numero, bairro, cidade, estado,
	cnae, grupo, ocupacao_uso, divisao, descricao, carga_incendio_mj_m2,
	altura_tipo, altura_denominacao, altura_descricao, area_m2, numero_ocupantes,
	grau_risco, created_at, updated_at
`

func (r *PostgresCompaniesRepository) CreateCompany(ctx context.Context, c *domain.Company) error {
	query := `
		INSERT INTO empresa (
			id, razao_social, nome_fantasia, cnpj, responsavel, email, telefone,
			cep, rua, numero, bairro, cidade, estado,
			cnae, grupo, ocupacao_uso, divisao, descricao, carga_incendio_mj_m2,
			altura_tipo, altura_denominacao, altura_descricao, area_m2, numero_ocupantes,
			grau_risco
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24,
			$25
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.RazaoSocial, c.NomeFantasia, c.CNPJ, c.Responsavel, c.Email, c.Telefone,
		c.CEP, c.Rua, c.Numero, c.Bairro, c.Cidade, c.Estado,
		c.CNAE, c.Grupo, c.OcupacaoUso, c.Divisao, c.Descricao, c.CargaIncendioMJM2,
		c.AlturaTipo, c.AlturaDenominacao, c.AlturaDescricao, c.AreaM2, c.NumeroOcupantes,
		string(c.GrauRisco),
	)
	if err != nil {
		return fmt.Errorf("failed to insert company: %w", err)
	}
	return nil
}

func (r *PostgresCompaniesRepository) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM empresa WHERE id = $1`, companyColumns)

	var c domain.Company
	err := r.db.QueryRowContext(ctx, query, id).Scan(companyScanTargets(&c)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

func (r *PostgresCompaniesRepository) ListCompanies(ctx context.Context, filters CompanyFilters, page, size int) ([]*domain.Company, int, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	where := []string{"TRUE"}
	args := []any{}
	argIdx := 1

	if filters.Search != "" {
		where = append(where, fmt.Sprintf(
			"(razao_social ILIKE $%d OR nome_fantasia ILIKE $%d OR cnpj ILIKE $%d)",
			argIdx, argIdx, argIdx))
		args = append(args, "%"+filters.Search+"%")
		argIdx++
	}
	if filters.Divisao != "" {
		where = append(where, fmt.Sprintf("divisao = $%d", argIdx))
		args = append(args, filters.Divisao)
		argIdx++
	}
	if filters.GrauRisco != "" {
		where = append(where, fmt.Sprintf("grau_risco = $%d", argIdx))
		args = append(args, filters.GrauRisco)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM empresa WHERE %s`, whereClause)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s FROM empresa
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, companyColumns, whereClause, argIdx, argIdx+1)
	args = append(args, size, (page-1)*size)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(companyScanTargets(&c)...); err != nil {
			return nil, 0, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate companies: %w", err)
	}

	return companies, total, nil
}

func (r *PostgresCompaniesRepository) UpdateCompany(ctx context.Context, c *domain.Company) error {
	query := `
		UPDATE empresa SET
			razao_social = $2, nome_fantasia = $3, cnpj = $4, responsavel = $5,
			email = $6, telefone = $7,
			cep = $8, rua = $9, numero = $10, bairro = $11, cidade = $12, estado = $13,
			cnae = $14, grupo = $15, ocupacao_uso = $16, divisao = $17,
			descricao = $18, carga_incendio_mj_m2 = $19,
			altura_tipo = $20, altura_denominacao = $21, altura_descricao = $22,
			area_m2 = $23, numero_ocupantes = $24, grau_risco = $25,
			updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, c.RazaoSocial, c.NomeFantasia, c.CNPJ, c.Responsavel,
		c.Email, c.Telefone,
		c.CEP, c.Rua, c.Numero, c.Bairro, c.Cidade, c.Estado,
		c.CNAE, c.Grupo, c.OcupacaoUso, c.Divisao,
		c.Descricao, c.CargaIncendioMJM2,
		c.AlturaTipo, c.AlturaDenominacao, c.AlturaDescricao,
		c.AreaM2, c.NumeroOcupantes, string(c.GrauRisco),
	)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresCompaniesRepository) DeleteCompany(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM empresa WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func companyScanTargets(c *domain.Company) []any {
	return []any{
		&c.ID, &c.RazaoSocial, &c.NomeFantasia, &c.CNPJ, &c.Responsavel, &c.Email, &c.Telefone,
		&c.CEP, &c.Rua, &c.Numero, &c.Bairro, &c.Cidade, &c.Estado,
		&c.CNAE, &c.Grupo, &c.OcupacaoUso, &c.Divisao, &c.Descricao, &c.CargaIncendioMJM2,
		&c.AlturaTipo, &c.AlturaDenominacao, &c.AlturaDescricao, &c.AreaM2, &c.NumeroOcupantes,
		&c.GrauRisco, &c.CreatedAt, &c.UpdatedAt,
	}
}
