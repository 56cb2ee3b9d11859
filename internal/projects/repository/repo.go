package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kiokosk/CustomerProjectManagement/internal/projects/domain"
	"github.com/kiokosk/CustomerProjectManagement/internal/storage"
)

const selectProject = `
SELECT p.id, p.name, p.description, p.customer_id, p.created_at, p.updated_at,
       c.name AS customer_name
FROM projects p
JOIN customers c ON c.id = p.customer_id
`

type dbProject struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	CustomerID   int64     `db:"customer_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
	CustomerName string    `db:"customer_name"`
}

func (p dbProject) toDomain() domain.Project {
	return domain.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CustomerID:  p.CustomerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Customer:    &domain.CustomerRef{Name: p.CustomerName},
	}
}

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns all projects with their customer's name, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = selectProject + `ORDER BY p.created_at DESC, p.id DESC`

	var rows []dbProject
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q)); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	out := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Get returns a single project with its customer's name.
func (r *ProjectRepository) Get(ctx context.Context, id int64) (*domain.Project, error) {
	var row dbProject
	err := r.db.GetContext(ctx, &row, r.db.Rebind(selectProject+`WHERE p.id = ?`), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}

	p := row.toDomain()
	return &p, nil
}

// NameTaken reports whether a project other than exceptID already uses name.
// Pass 0 to check against every project.
func (r *ProjectRepository) NameTaken(ctx context.Context, name string, exceptID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM projects WHERE name = ? AND id <> ?)`

	var taken bool
	if err := r.db.GetContext(ctx, &taken, r.db.Rebind(q), name, exceptID); err != nil {
		return false, fmt.Errorf("checking project name: %w", err)
	}
	return taken, nil
}

// CustomerExists reports whether a customer with id exists.
func (r *ProjectRepository) CustomerExists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM customers WHERE id = ?)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, r.db.Rebind(q), id); err != nil {
		return false, fmt.Errorf("checking customer: %w", err)
	}
	return exists, nil
}

// Create inserts a new project.
func (r *ProjectRepository) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	const q = `
INSERT INTO projects (name, description, customer_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id
`
	now := time.Now().UTC()

	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(q), in.Name, in.Description, in.CustomerID, now, now).Scan(&id)
	if err != nil {
		return nil, constraintErr("creating project", err)
	}

	return r.Get(ctx, id)
}

// Update overwrites name, description and owning customer.
func (r *ProjectRepository) Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error) {
	const q = `
UPDATE projects
SET name = ?, description = ?, customer_id = ?, updated_at = ?
WHERE id = ?
`
	result, err := r.db.ExecContext(ctx, r.db.Rebind(q), in.Name, in.Description, in.CustomerID, time.Now().UTC(), id)
	if err != nil {
		return nil, constraintErr("updating project", err)
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

// Delete removes a project.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM projects WHERE id = ?`

	result, err := r.db.ExecContext(ctx, r.db.Rebind(q), id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
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

func constraintErr(op string, err error) error {
	switch {
	case storage.IsUniqueViolation(err):
		return domain.ErrNameTaken
	case storage.IsForeignKeyViolation(err):
		return domain.ErrCustomerNotFound
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
