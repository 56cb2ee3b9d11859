package domain

import "time"

// Customer is a client with contact details. It may own many projects.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerInput is the full, replaceable field set of a customer.
type CustomerInput struct {
	Name    string
	Email   string
	Address string
}
