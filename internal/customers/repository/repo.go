package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kiokosk/CustomerProjectManagement/internal/customers/domain"
	"github.com/kiokosk/CustomerProjectManagement/internal/storage"
)

const selectCustomer = `
SELECT id, name, email, address, created_at, updated_at
FROM customers
`

type dbCustomer struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c dbCustomer) toDomain() domain.Customer {
	return domain.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CustomerRepository provides persistence operations for customers.
type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns every customer, newest first.
func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	const q = selectCustomer + `ORDER BY created_at DESC, id DESC`

	var rows []dbCustomer
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q)); err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	out := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CustomerRepository) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.getOne(ctx, selectCustomer+`WHERE id = ?`, id)
}

// FindByEmail returns domain.ErrNotFound when no customer uses email.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.getOne(ctx, selectCustomer+`WHERE email = ?`, email)
}

func (r *CustomerRepository) getOne(ctx context.Context, q string, arg any) (*domain.Customer, error) {
	var row dbCustomer
	err := r.db.GetContext(ctx, &row, r.db.Rebind(q), arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	c := row.toDomain()
	return &c, nil
}

// Create inserts a customer. A duplicate email yields domain.ErrEmailTaken.
func (r *CustomerRepository) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (name, email, address, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id
`
	now := time.Now().UTC()

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(q), in.Name, in.Email, in.Address, now, now).Scan(&id)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return r.Get(ctx, id)
}

// Update overwrites name, email and address.
func (r *CustomerRepository) Update(ctx context.Context, id int64, in domain.CustomerInput) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET name = ?, email = ?, address = ?, updated_at = ?
WHERE id = ?
`
	result, err := r.db.ExecContext(ctx, r.db.Rebind(q), in.Name, in.Email, in.Address, time.Now().UTC(), id)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("fetching rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.Get(ctx, id)
}

// Delete removes a customer. Customers that still own projects yield
// domain.ErrHasProjects.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM customers WHERE id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(q), id)
	if err != nil {
		if storage.IsForeignKeyViolation(err) {
			return domain.ErrHasProjects
		}
		return fmt.Errorf("deleting customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("fetching rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
