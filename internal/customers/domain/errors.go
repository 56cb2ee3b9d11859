package domain

import "errors"

var (
	ErrNotFound    = errors.New("customer not found")
	ErrEmailTaken  = errors.New("customer email already exists")
	ErrHasProjects = errors.New("customer still owns projects")
)
