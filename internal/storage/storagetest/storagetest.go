// Package storagetest opens throwaway migrated databases for tests.
package storagetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/kiokosk/CustomerProjectManagement/config"
	"github.com/kiokosk/CustomerProjectManagement/internal/storage"
)

// NewSQLite returns a migrated SQLite database in t's temp dir. It is closed
// when the test ends.
func NewSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Dialect: config.DialectSQLite,
		Name:    filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := storage.NewConnection(context.Background(), cfg)
	if err != nil {
		t.Fatalf("storage.NewConnection() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := storage.Migrate(db, cfg.Dialect); err != nil {
		t.Fatalf("storage.Migrate() failed: %v", err)
	}
	return db
}
