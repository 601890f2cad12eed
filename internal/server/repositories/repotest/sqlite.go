// Package repotest opens throwaway, migrated SQLite databases for tests.
package repotest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// NewSQLiteDSN returns a DSN for a private in-memory SQLite database.
func NewSQLiteDSN() string {
	return repomanager.SQLiteDSNPrefix + "file:" + uuid.NewString() + "?mode=memory&cache=shared"
}

// OpenSQLite opens a fresh in-memory database with all migrations applied.
// It is closed when the test ends.
func OpenSQLite(t testing.TB) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()

	ctx := context.Background()
	db, m, err := repomanager.Open(ctx, NewSQLiteDSN())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.RunMigrations(ctx, db))
	return db, m
}
