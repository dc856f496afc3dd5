package memory

import (
	"sync"

	"github.com/CameronXie/ecommerce-cli/internal/domain"
	"github.com/CameronXie/ecommerce-cli/internal/repository"
)

// CustomerRepository stores customers keyed by tax id
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

// NewCustomerRepository creates a new CustomerRepository instance
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

// SaveCustomer stores the customer under its tax id, replacing any customer with the same tax id.
// It reports whether an existing customer was replaced.
func (r *CustomerRepository) SaveCustomer(customer *domain.Customer) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.customers[customer.Person.TaxID]
	r.customers[customer.Person.TaxID] = customer

	return replaced
}

// GetCustomerByTaxID retrieves a customer by tax id
func (r *CustomerRepository) GetCustomerByTaxID(taxID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[taxID]
	if !ok {
		return nil, &repository.NotFoundError{
			Resource: repository.CustomerResource,
			Key:      "tax id",
			Value:    taxID,
		}
	}

	return customer, nil
}
