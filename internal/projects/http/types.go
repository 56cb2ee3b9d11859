package http

import (
	"context"

	"github.com/kiokosk/CustomerProjectManagement/internal/projects/domain"
)

// Service is what the handlers need from the project service.
type Service interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, in domain.ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id int64, in domain.ProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

type projectReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CustomerID  int64  `json:"customerId"`
}

func (r projectReq) input() domain.ProjectInput {
	return domain.ProjectInput{Name: r.Name, Description: r.Description, CustomerID: r.CustomerID}
}
