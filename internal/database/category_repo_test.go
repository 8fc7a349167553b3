package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxxcyber/billscan/internal/models"
)

func TestUpsertCategories(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertCategoryQuery)).
		WithArgs(models.CategorySalary, "income", 1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(upsertCategoryQuery)).
		WithArgs(models.CategoryBonus, "income", 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := db.UpsertCategories(context.Background(), models.TransactionIncome,
		[]string{models.CategorySalary, models.CategoryBonus})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCategories_Rollback(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertCategoryQuery)).
		WithArgs(models.CategoryFood, "expense", 1).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := db.UpsertCategories(context.Background(), models.TransactionExpense, []string{models.CategoryFood})
	assert.ErrorContains(t, err, "failed to upsert category")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCategories(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(listCategoriesQuery)).
		WithArgs("expense").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "type", "sort_order"}).
			AddRow(1, models.CategoryFood, "expense", 1).
			AddRow(2, models.CategoryTransport, "expense", 2))

	rows, err := db.ListCategories(context.Background(), models.TransactionExpense)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.CategoryTransport, rows[1].Name)
	assert.Equal(t, models.TransactionExpense, rows[1].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}
