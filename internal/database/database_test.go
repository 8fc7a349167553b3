package database

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestRunMigrations_SkipsApplied(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	checkQuery := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)")
	recordQuery := regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")

	mock.ExpectQuery(checkQuery).WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	for _, version := range []int{2, 3} {
		mock.ExpectQuery(checkQuery).WithArgs(version).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec(regexp.QuoteMeta(migrations[version])).
			WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(recordQuery).WithArgs(version).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	assert.NoError(t, RunMigrations(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
