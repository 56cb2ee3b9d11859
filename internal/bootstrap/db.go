package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/kiokosk/CustomerProjectManagement/config"
	"github.com/kiokosk/CustomerProjectManagement/internal/storage"
)

// OpenDB connects to the configured database and, when enabled, brings the
// schema up to date.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := storage.NewConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	if cfg.AutoMigrate {
		if err := storage.Migrate(db, cfg.Dialect); err != nil {
			db.Close()
			return nil, fmt.Errorf("db migrate: %w", err)
		}
		log.Printf("[db] migrations applied (dialect=%s)", cfg.Dialect)
	}

	return db, nil
}
