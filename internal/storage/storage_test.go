package storage_test

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiokosk/CustomerProjectManagement/config"
	"github.com/kiokosk/CustomerProjectManagement/internal/storage"
	"github.com/kiokosk/CustomerProjectManagement/internal/storage/storagetest"
)

func TestDSN(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		dsn := storage.DSN(&config.DatabaseConfig{
			Dialect:  config.DialectPostgres,
			Host:     "db",
			Port:     5433,
			User:     "cpm",
			Password: "secret",
			Name:     "crm",
		})
		assert.Equal(t, "postgres://cpm:secret@db:5433/crm?sslmode=disable", dsn)
		assert.Equal(t, "postgres", storage.DriverName(config.DialectPostgres))
	})

	t.Run("postgres password with spaces and quotes", func(t *testing.T) {
		const password = `p@ss word'"/:?`
		dsn := storage.DSN(&config.DatabaseConfig{
			Dialect:  config.DialectPostgres,
			Host:     "db",
			Port:     5432,
			User:     "cpm",
			Password: password,
			Name:     "crm",
			SSLMode:  "require",
		})

		u, err := url.Parse(dsn)
		require.NoError(t, err)
		got, ok := u.User.Password()
		assert.True(t, ok)
		assert.Equal(t, password, got)
		assert.Equal(t, "cpm", u.User.Username())
		assert.Equal(t, "db:5432", u.Host)
		assert.Equal(t, "/crm", u.Path)
		assert.Equal(t, "require", u.Query().Get("sslmode"))
	})

	t.Run("sqlite", func(t *testing.T) {
		dsn := storage.DSN(&config.DatabaseConfig{Dialect: config.DialectSQLite, Name: "/tmp/cpm.db"})
		assert.Contains(t, dsn, "file:/tmp/cpm.db?")
		assert.Contains(t, dsn, "_pragma=foreign_keys(1)")
		assert.Equal(t, "sqlite", storage.DriverName(config.DialectSQLite))
	})
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := storagetest.NewSQLite(t)

	require.NoError(t, storage.Migrate(db, config.DialectSQLite))

	var tables []string
	err := db.Select(&tables, `SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('customers', 'projects') ORDER BY name`)
	require.NoError(t, err)
	assert.Equal(t, []string{"customers", "projects"}, tables)
}

func TestConstraintViolations_SQLite(t *testing.T) {
	db := storagetest.NewSQLite(t)
	ctx := context.Background()
	now := time.Now().UTC()

	const insertCustomer = `INSERT INTO customers (name, email, address, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, insertCustomer, "Acme", "a@acme.com", "1 Main St", now, now)
	require.NoError(t, err)

	t.Run("duplicate email is a unique violation", func(t *testing.T) {
		_, err := db.ExecContext(ctx, insertCustomer, "Acme 2", "a@acme.com", "2 Main St", now, now)
		require.Error(t, err)
		assert.True(t, storage.IsUniqueViolation(err))
		assert.False(t, storage.IsForeignKeyViolation(err))
	})

	t.Run("unknown customer is a foreign key violation", func(t *testing.T) {
		_, err := db.ExecContext(ctx,
			`INSERT INTO projects (name, description, customer_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			"Apollo", "moon", 999, now, now)
		require.Error(t, err)
		assert.True(t, storage.IsForeignKeyViolation(err))
		assert.False(t, storage.IsUniqueViolation(err))
	})

	t.Run("deleting a referenced customer is a foreign key violation", func(t *testing.T) {
		var customerID int64
		require.NoError(t, db.GetContext(ctx, &customerID, `SELECT id FROM customers WHERE email = ?`, "a@acme.com"))
		_, err := db.ExecContext(ctx,
			`INSERT INTO projects (name, description, customer_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			"Apollo", "moon", customerID, now, now)
		require.NoError(t, err)

		// ON DELETE RESTRICT fails with SQLITE_CONSTRAINT_TRIGGER (1811)
		_, err = db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, customerID)
		require.Error(t, err)
		assert.True(t, storage.IsForeignKeyViolation(err), err.Error())
		assert.False(t, storage.IsUniqueViolation(err))
	})

	t.Run("other errors are not constraint violations", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO nowhere (id) VALUES (1)`)
		require.Error(t, err)
		assert.False(t, storage.IsForeignKeyViolation(err))
		assert.False(t, storage.IsUniqueViolation(err))
	})
}

func TestConstraintViolations_Postgres(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})
	fk := fmt.Errorf("delete: %w", &pq.Error{Code: "23503"})

	assert.True(t, storage.IsUniqueViolation(unique))
	assert.False(t, storage.IsForeignKeyViolation(unique))
	assert.True(t, storage.IsForeignKeyViolation(fk))
	assert.False(t, storage.IsUniqueViolation(errors.New("23505")))
}
