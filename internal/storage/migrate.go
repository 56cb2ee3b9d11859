package storage

import (
	"embed"
	"fmt"
	"path"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/kiokosk/CustomerProjectManagement/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration for the dialect.
func Migrate(db *sqlx.DB, dialect string) error {
	gooseDialect := goose.DialectPostgres
	if dialect == config.DialectSQLite {
		gooseDialect = goose.DialectSQLite3
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(gooseDialect)); err != nil {
		return fmt.Errorf("setting dialect for migrations: %w", err)
	}

	if err := goose.Up(db.DB, path.Join("migrations", dialect)); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
