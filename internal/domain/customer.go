package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Person holds the identity data of someone registered in the shop.
type Person struct {
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
	Email string `json:"email"`
}

// Customer is a registered Person with a generated identifier.
type Customer struct {
	ID     uuid.UUID `json:"id"`
	Person Person    `json:"person"`
}

// NewCustomer binds a person to the given identifier.
func NewCustomer(id uuid.UUID, person Person) *Customer {
	return &Customer{
		ID:     id,
		Person: person,
	}
}

func (c *Customer) String() string {
	return fmt.Sprintf(
		"Customer(id=%s, name=%s, tax_id=%s, email=%s)",
		c.ID,
		c.Person.Name,
		c.Person.TaxID,
		c.Person.Email,
	)
}
