package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kiokosk/CustomerProjectManagement/internal/projects/domain"
)

const projectsPath = "/api/v1/projects"

type ProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	CustomerID  int64  `json:"customerId"`
}

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := c.do(ctx, http.MethodGet, projectsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", projectsPath, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, http.MethodPost, projectsPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(ctx context.Context, id int64, req ProjectRequest) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", projectsPath, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) (string, error) {
	var out messageBody
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", projectsPath, id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
