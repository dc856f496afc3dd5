package domain

import (
	"slices"
	"sync"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderOpen      OrderStatus = "Open"      // Order accepts new lines
	OrderFinalized OrderStatus = "Finalized" // Order is closed and recorded
	OrderCancelled OrderStatus = "Cancelled" // Order is closed and its stock was returned
)

// OrderLine pairs a product with a positive quantity.
type OrderLine struct {
	product  *Product
	quantity int
}

// NewOrderLine returns a line for quantity units of product.
func NewOrderLine(product *Product, quantity int) (*OrderLine, error) {
	if quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Value: quantity, Reason: "must be greater than zero"}
	}

	return &OrderLine{
		product:  product,
		quantity: quantity,
	}, nil
}

// Product returns the product referenced by the line.
func (l *OrderLine) Product() *Product {
	return l.product
}

// Quantity returns the number of units on the line.
func (l *OrderLine) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price times quantity.
func (l *OrderLine) Subtotal() decimal.Decimal {
	return l.product.Price().Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Order is a customer's sequence of order lines.
//
// An order starts Open. AddLine reserves stock immediately, Finalize closes the order keeping the
// reserved stock, and Cancel closes it returning every reserved unit.
type Order struct {
	customer *Customer

	mu     sync.Mutex
	status OrderStatus
	lines  []*OrderLine
}

// NewOrder returns an open order for customer.
func NewOrder(customer *Customer) *Order {
	return &Order{
		customer: customer,
		status:   OrderOpen,
	}
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() *Customer {
	return o.customer
}

// Status returns the current lifecycle state.
func (o *Order) Status() OrderStatus {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.status
}

// Lines returns a copy of the order lines in insertion order.
func (o *Order) Lines() []*OrderLine {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.lines)
}

// Total returns the sum of all line subtotals.
func (o *Order) Total() decimal.Decimal {
	o.mu.Lock()
	defer o.mu.Unlock()

	total := decimal.Zero
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

// AddLine validates quantity, takes it from the product's stock and appends a new line.
// On error neither the order nor the product is modified.
func (o *Order) AddLine(product *Product, quantity int) (*OrderLine, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status != OrderOpen {
		return nil, ErrOrderClosed
	}

	line, err := NewOrderLine(product, quantity)
	if err != nil {
		return nil, err
	}

	if err := product.take(quantity); err != nil {
		return nil, err
	}

	o.lines = append(o.lines, line)
	return line, nil
}

// Finalize closes the order. Stock taken by its lines is kept.
func (o *Order) Finalize() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status != OrderOpen {
		return ErrOrderClosed
	}

	o.status = OrderFinalized
	return nil
}

// Cancel closes the order and returns the stock taken by each line to its product.
func (o *Order) Cancel() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status != OrderOpen {
		return ErrOrderClosed
	}

	for _, line := range o.lines {
		line.product.restock(line.quantity)
	}

	o.status = OrderCancelled
	return nil
}
