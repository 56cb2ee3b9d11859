package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kiokosk/CustomerProjectManagement/internal/customers/domain"
)

const customersPath = "/api/v1/customers"

type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := c.do(ctx, http.MethodGet, customersPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", customersPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, req CustomerRequest) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.do(ctx, http.MethodPost, customersPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, req CustomerRequest) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", customersPath, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCustomer returns the server's confirmation message.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) (string, error) {
	var out messageBody
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", customersPath, id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
