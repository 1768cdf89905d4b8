package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanoink/sistema-inspecao-incendio/internal/domain"
)

func TestListItems_OrderedByOrdem(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresChecklistsRepository(db)

	rows := sqlmock.NewRows([]string{"id", "inspecao_id", "item_numero", "descricao", "ordem"}).
		AddRow("item-1", "insp-1", "1.1", "Extintores sinalizados", 1).
		AddRow("item-2", "insp-1", "1.2", "Hidrantes desobstruídos", 2)

	mock.ExpectQuery(`FROM checklist_itens\s+ORDER BY ordem`).
		WillReturnRows(rows)

	items, err := repo.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1.1", items[0].ItemNumero)
	assert.Equal(t, "insp-1", items[1].InspecaoID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAnswers_DeleteThenInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresChecklistsRepository(db)

	obs := "válvula com vazamento"
	answers := []domain.CompanyChecklist{
		{ID: "ans-1", EmpresaID: "emp-1", ChecklistItemID: "item-1", Status: domain.ChecklistCompliant},
		{ID: "ans-2", EmpresaID: "emp-1", ChecklistItemID: "item-2", Status: domain.ChecklistNonCompliant, Observacoes: &obs},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM empresa_checklist WHERE empresa_id = \$1`).
		WithArgs("emp-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO empresa_checklist`).
		WithArgs("ans-1", "emp-1", "item-1", "C", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO empresa_checklist`).
		WithArgs("ans-2", "emp-1", "item-2", "NC", &obs).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAnswers(context.Background(), "emp-1", answers))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAnswers_RequiresCompanyID(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresChecklistsRepository(db)

	err := repo.ReplaceAnswers(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReplaceAnswers_InsertFailureRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()
	repo := NewPostgresChecklistsRepository(db)

	answers := []domain.CompanyChecklist{
		{ID: "ans-1", EmpresaID: "emp-1", ChecklistItemID: "item-1", Status: domain.ChecklistNotApplicable},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM empresa_checklist`).
		WithArgs("emp-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO empresa_checklist`).
		WithArgs("ans-1", "emp-1", "item-1", "NA", nil).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceAnswers(context.Background(), "emp-1", answers)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
