package service

import (
	"context"
	"errors"
	"strings"

	"github.com/kiokosk/CustomerProjectManagement/internal/apperr"
	"github.com/kiokosk/CustomerProjectManagement/internal/projects/domain"
)

const (
	MsgEmptyFields     = "Please fill in all the fields!"
	MsgInvalidCustomer = "Invalid customerId! No such customer exists."
	MsgNameExists      = "A project with this name already exists."
	MsgNotFound        = "Project not found!"
)

// Repository is the persistence the service needs.
type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	NameTaken(ctx context.Context, name string, exceptID int64) (bool, error)
	CustomerExists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo Repository
}

// NewProjectService creates a new project service
func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// List returns all projects, newest first
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return items, nil
}

// Get returns a single project
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error) {
	in = normalize(in)
	if err := s.check(ctx, in, 0); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// Update replaces a project's name, description and customer. An unknown id
// is reported before any field problem.
func (s *ProjectService) Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, translate(err)
	}

	in = normalize(in)
	if err := s.check(ctx, in, id); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// Delete removes a project
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

// check validates in for a write to project selfID (0 on create).
func (s *ProjectService) check(ctx context.Context, in domain.ProjectInput, selfID int64) error {
	if empty := emptyFields(in); len(empty) > 0 {
		return apperr.Validation(MsgEmptyFields, empty...)
	}

	exists, err := s.repo.CustomerExists(ctx, in.CustomerID)
	if err != nil {
		return apperr.Persistence(err)
	}
	if !exists {
		return apperr.Validation(MsgInvalidCustomer)
	}

	taken, err := s.repo.NameTaken(ctx, in.Name, selfID)
	if err != nil {
		return apperr.Persistence(err)
	}
	if taken {
		return apperr.Conflict(MsgNameExists, domain.ErrNameTaken)
	}
	return nil
}

func emptyFields(in domain.ProjectInput) []string {
	var empty []string
	if in.Name == "" {
		empty = append(empty, "name")
	}
	if in.Description == "" {
		empty = append(empty, "description")
	}
	if in.CustomerID <= 0 {
		empty = append(empty, "customerId")
	}
	return empty
}

func translate(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperr.NotFound(MsgNotFound)
	case errors.Is(err, domain.ErrNameTaken):
		return apperr.Conflict(MsgNameExists, err)
	case errors.Is(err, domain.ErrCustomerNotFound):
		return apperr.Validation(MsgInvalidCustomer)
	default:
		return apperr.Persistence(err)
	}
}

func normalize(in domain.ProjectInput) domain.ProjectInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}
