package store

import (
	"testing"

	"bizdesk-server/internal/observability"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// newMockStore returns a Store backed by sqlmock. Expectations are verified on cleanup.
func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		db.Close()
	})

	logger := observability.NewLoggerWithZap(zap.NewNop())
	return NewWithDB(sqlx.NewDb(db, "pgx"), logger), mock
}
