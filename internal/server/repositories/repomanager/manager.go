package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/products"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// RepositoryManager vends repositories for one SQL dialect and migrates its schema.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
}

// SQLiteDSNPrefix marks a DSN that should be opened with the SQLite driver.
const SQLiteDSNPrefix = "sqlite:"

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Open connects to the database named by dsn and returns it together with
// the matching RepositoryManager. "sqlite:<path or uri>" selects SQLite;
// everything else is handed to pgx.
func Open(ctx context.Context, dsn string) (*sql.DB, RepositoryManager, error) {
	driver, source, m := "pgx", dsn, RepositoryManager(NewPostgresRepositoryManager())
	if rest, ok := strings.CutPrefix(dsn, SQLiteDSNPrefix); ok {
		driver, source, m = "sqlite", rest, NewSQLiteRepositoryManager()
	}

	db, err := sqlOpen(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == "sqlite" {
		// one connection keeps in-memory databases alive and serializes writers
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, m, nil
}
