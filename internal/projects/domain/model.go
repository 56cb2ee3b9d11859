package domain

import "time"

// Project is a unit of work owned by exactly one customer. Names are unique
// across all customers.
type Project struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CustomerID  int64        `json:"customerId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Customer    *CustomerRef `json:"customer,omitempty"`
}

// CustomerRef is the owning customer as embedded in project reads.
type CustomerRef struct {
	Name string `json:"name"`
}

// ProjectInput is the full, replaceable field set of a project.
type ProjectInput struct {
	Name        string
	Description string
	CustomerID  int64
}
