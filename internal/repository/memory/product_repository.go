package memory

import (
	"sync"

	"github.com/CameronXie/ecommerce-cli/internal/domain"
	"github.com/CameronXie/ecommerce-cli/internal/repository"
)

// ProductRepository stores products keyed by name and remembers the order names were first saved in.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
	names    []string
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[string]*domain.Product),
	}
}

// SaveProduct stores the product under its name, replacing any product with the same name.
// A replaced product keeps its listing position. It reports whether a product was replaced.
func (r *ProductRepository) SaveProduct(product *domain.Product) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.products[product.Name()]
	if !replaced {
		r.names = append(r.names, product.Name())
	}
	r.products[product.Name()] = product

	return replaced
}

// GetProductByName retrieves a product by name
func (r *ProductRepository) GetProductByName(name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[name]
	if !ok {
		return nil, &repository.NotFoundError{
			Resource: repository.ProductResource,
			Key:      "name",
			Value:    name,
		}
	}

	return product, nil
}

// ListProducts returns every product in the order it was first saved.
func (r *ProductRepository) ListProducts() []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.names))
	for _, name := range r.names {
		products = append(products, r.products[name])
	}

	return products
}
