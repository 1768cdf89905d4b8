package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

func testTime() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestReplaceAll_DeletesAndInsertsInOneTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresCompanyRequirementsRepository(db)

	records := []domain.CompanyRequirement{
		{ID: "r1", EmpresaID: "emp-1", ExigenciaID: "e1", Atende: false},
		{ID: "r2", EmpresaID: "emp-1", ExigenciaID: "e2", Atende: true},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM empresa_exigencias WHERE empresa_id = \$1`).
		WithArgs("emp-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO empresa_exigencias`).
		WithArgs("r1", "emp-1", "e1", false, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO empresa_exigencias`).
		WithArgs("r2", "emp-1", "e2", true, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), "emp-1", records)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_EmptySetOnlyDeletes(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresCompanyRequirementsRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM empresa_exigencias WHERE empresa_id = \$1`).
		WithArgs("emp-1").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), "emp-1", nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_InsertFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresCompanyRequirementsRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM empresa_exigencias`).
		WithArgs("emp-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO empresa_exigencias`).
		WithArgs("r1", "emp-1", "e1", false, nil).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), "emp-1", []domain.CompanyRequirement{
		{ID: "r1", EmpresaID: "emp-1", ExigenciaID: "e1"},
	})
	assert.ErrorIs(t, err, domain.ErrResyncFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAll_RequiresCompanyID(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresCompanyRequirementsRepository(db)

	err := repo.ReplaceAll(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByCompany_JoinsDefinitions(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresCompanyRequirementsRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "empresa_id", "exigencia_id", "atende", "observacoes", "created_at", "updated_at",
		"e_id", "codigo", "nome", "categoria", "subcategoria", "ordem",
	}).
		AddRow("r1", "emp-1", "e1", true, "instalado", testTime(), testTime(),
			"e1", "EXT", "Extintores", "Combate", nil, 1).
		AddRow("r2", "emp-1", "e2", false, nil, testTime(), testTime(),
			"e2", "SAI", "Saídas de Emergência", "Abandono", nil, 2)

	mock.ExpectQuery(`FROM empresa_exigencias ce\s+INNER JOIN exigencias_seguranca e ON e.id = ce.exigencia_id`).
		WithArgs("emp-1").
		WillReturnRows(rows)

	result, err := repo.ListByCompany(context.Background(), "emp-1")
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.True(t, result[0].Record.Atende)
	require.NotNil(t, result[0].Record.Observacoes)
	assert.Equal(t, "instalado", *result[0].Record.Observacoes)
	assert.Equal(t, "EXT", result[0].Definition.Codigo)

	assert.False(t, result[1].Record.Atende)
	assert.Nil(t, result[1].Record.Observacoes)

	assert.NoError(t, mock.ExpectationsWereMet())
}
