package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kiokosk/CustomerProjectManagement/internal/apperr"
	"github.com/kiokosk/CustomerProjectManagement/internal/customers/domain"
)

const (
	MsgEmptyFields  = "Please fill in all the fields!"
	MsgInvalidEmail = "Please enter a valid email address!"
	MsgEmailExists  = "Customer with that email already exists!"
	MsgEmailInUse   = "Email is already in use by another customer!"
	MsgNotFound     = "Customer not found!"
	MsgHasProjects  = "Customer still has projects and cannot be deleted!"
)

// Repository is the persistence the service needs.
type Repository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, in domain.CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerService handles customer validation and uniqueness rules.
type CustomerService struct {
	repo     Repository
	validate *validator.Validate
}

func NewCustomerService(repo Repository) *CustomerService {
	return &CustomerService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return items, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

// Create rejects empty fields, malformed emails and emails already on file.
func (s *CustomerService) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	in = normalize(in)
	if err := s.check(in); err != nil {
		return nil, err
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, apperr.Conflict(MsgEmailExists, domain.ErrEmailTaken)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, apperr.Persistence(err)
	}

	c, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, writeErr(err, MsgEmailExists)
	}
	return c, nil
}

// Update replaces every field. Keeping the current email is always allowed.
// An unknown id is reported before any field problem.
func (s *CustomerService) Update(ctx context.Context, id int64, in domain.CustomerInput) (*domain.Customer, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, translate(err)
	}

	in = normalize(in)
	if err := s.check(in); err != nil {
		return nil, err
	}

	if in.Email != current.Email {
		other, err := s.repo.FindByEmail(ctx, in.Email)
		switch {
		case err == nil && other.ID != current.ID:
			return nil, apperr.Conflict(MsgEmailInUse, domain.ErrEmailTaken)
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, apperr.Persistence(err)
		}
	}

	c, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, writeErr(err, MsgEmailInUse)
	}
	return c, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	return nil
}

func (s *CustomerService) check(in domain.CustomerInput) error {
	var empty []string
	if in.Name == "" {
		empty = append(empty, "name")
	}
	if in.Email == "" {
		empty = append(empty, "email")
	}
	if in.Address == "" {
		empty = append(empty, "address")
	}
	if len(empty) > 0 {
		return apperr.Validation(MsgEmptyFields, empty...)
	}

	if err := s.validate.Var(in.Email, "email"); err != nil {
		return apperr.Validation(MsgInvalidEmail)
	}
	return nil
}

// writeErr translates a failed insert or update. conflictMsg is used when
// the email constraint fired.
func writeErr(err error, conflictMsg string) error {
	if errors.Is(err, domain.ErrEmailTaken) {
		return apperr.Conflict(conflictMsg, err)
	}
	return translate(err)
}

// translate maps repository errors onto apperr kinds.
func translate(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperr.NotFound(MsgNotFound)
	case errors.Is(err, domain.ErrHasProjects):
		return apperr.Conflict(MsgHasProjects, err)
	default:
		return apperr.Persistence(err)
	}
}

func normalize(in domain.CustomerInput) domain.CustomerInput {
	return domain.CustomerInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Address: strings.TrimSpace(in.Address),
	}
}
