package domain

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Product is a sellable item with a unit price and a stock level.
// Stock can only be changed by adding lines to, or cancelling, an Order.
type Product struct {
	name  string
	price decimal.Decimal

	mu    sync.Mutex
	stock int
}

// NewProduct validates price and stock and returns a new Product.
func NewProduct(name string, price decimal.Decimal, stock int) (*Product, error) {
	if price.IsNegative() {
		return nil, &ValidationError{Field: "price", Value: price, Reason: "must not be negative"}
	}

	if stock < 0 {
		return nil, &ValidationError{Field: "stock", Value: stock, Reason: "must not be negative"}
	}

	return &Product{
		name:  name,
		price: price,
		stock: stock,
	}, nil
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Stock returns the current stock level.
func (p *Product) Stock() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.stock
}

func (p *Product) String() string {
	return fmt.Sprintf("Product(name=%s, price=%s, stock=%d)", p.name, FormatAmount(p.price), p.Stock())
}

// FormatAmount renders d keeping its scale, so 19.90 stays "19.90" rather than "19.9".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(max(0, -d.Exponent()))
}

// take removes quantity units from stock, failing without change when stock is short.
func (p *Product) take(quantity int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if quantity > p.stock {
		return &InsufficientStockError{
			Product:   p.name,
			Requested: quantity,
			Available: p.stock,
		}
	}

	p.stock -= quantity
	return nil
}

// restock returns quantity units to stock.
func (p *Product) restock(quantity int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stock += quantity
}
