package memory

import (
	"iter"
	"sync"

	"github.com/CameronXie/ecommerce-cli/internal/domain"
)

// OrderRepository is an append-only list of orders
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.Order
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// AppendOrder records the order after every order appended before it.
func (r *OrderRepository) AppendOrder(order *domain.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
}

// Orders returns a sequence over the recorded orders in append order.
// Each iteration sees the orders recorded at the time it starts.
func (r *OrderRepository) Orders() iter.Seq[*domain.Order] {
	return func(yield func(*domain.Order) bool) {
		r.mu.RLock()
		orders := r.orders[:len(r.orders):len(r.orders)]
		r.mu.RUnlock()

		for _, order := range orders {
			if !yield(order) {
				return
			}
		}
	}
}
