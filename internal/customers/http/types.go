package http

import (
	"context"

	"github.com/kiokosk/CustomerProjectManagement/internal/customers/domain"
)

// Service is what the handlers need from the customer service.
type Service interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, in domain.CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// Handler bundles the dependencies for customer HTTP endpoints.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

type customerReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (r customerReq) input() domain.CustomerInput {
	return domain.CustomerInput{Name: r.Name, Email: r.Email, Address: r.Address}
}
