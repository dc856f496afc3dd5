package registry

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/CameronXie/ecommerce-cli/internal/domain"
	"github.com/CameronXie/ecommerce-cli/internal/repository/memory"
)

// Registry is the in-memory store of customers, products and finalized orders for a session.
// It is safe for concurrent use.
type Registry struct {
	customers *memory.CustomerRepository
	products  *memory.ProductRepository
	orders    *memory.OrderRepository

	newID  func() uuid.UUID
	logger *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithIDGenerator sets the function used to generate customer identifiers.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(r *Registry) {
		r.newID = newID
	}
}

// WithLogger sets the logger used to report registry events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		customers: memory.NewCustomerRepository(),
		products:  memory.NewProductRepository(),
		orders:    memory.NewOrderRepository(),
		newID:     uuid.New,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RegisterCustomer creates a customer and stores it by tax id.
// A customer already registered with the same tax id is replaced.
func (r *Registry) RegisterCustomer(name, taxID, email string) *domain.Customer {
	customer := domain.NewCustomer(r.newID(), domain.Person{
		Name:  name,
		TaxID: taxID,
		Email: email,
	})

	if r.customers.SaveCustomer(customer) {
		r.logger.Warn("customer_replaced", "tax_id", taxID, "customer_id", customer.ID)
	}

	r.logger.Info("customer_registered", "tax_id", taxID, "customer_id", customer.ID)
	return customer
}

// RegisterProduct creates a product and stores it by name.
// A product already registered with the same name is replaced. Nothing is stored when validation fails.
func (r *Registry) RegisterProduct(name string, price decimal.Decimal, stock int) (*domain.Product, error) {
	product, err := domain.NewProduct(name, price, stock)
	if err != nil {
		return nil, fmt.Errorf("register product %s: %w", name, err)
	}

	if r.products.SaveProduct(product) {
		r.logger.Warn("product_replaced", "product", name)
	}

	r.logger.Info("product_registered", "product", name, "price", domain.FormatAmount(price), "stock", stock)
	return product, nil
}

// Customer looks up a customer by tax id.
func (r *Registry) Customer(taxID string) (*domain.Customer, error) {
	return r.customers.GetCustomerByTaxID(taxID)
}

// Product looks up a product by name.
func (r *Registry) Product(name string) (*domain.Product, error) {
	return r.products.GetProductByName(name)
}

// Products returns every product in registration order.
func (r *Registry) Products() []*domain.Product {
	return r.products.ListProducts()
}

// StartOrder opens a new order for the customer with the given tax id.
func (r *Registry) StartOrder(taxID string) (*Checkout, error) {
	customer, err := r.customers.GetCustomerByTaxID(taxID)
	if err != nil {
		return nil, err
	}

	return &Checkout{
		registry: r,
		order:    domain.NewOrder(customer),
	}, nil
}

// Orders returns the finalized orders in the order they were finalized.
// The sequence is lazy and can be iterated any number of times.
func (r *Registry) Orders() iter.Seq[*domain.Order] {
	return r.orders.Orders()
}
