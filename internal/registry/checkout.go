package registry

import (
	"fmt"

	"github.com/CameronXie/ecommerce-cli/internal/domain"
)

// Checkout is an open order being assembled against the registry's products.
type Checkout struct {
	registry *Registry
	order    *domain.Order
}

// Order returns the order under assembly.
func (c *Checkout) Order() *domain.Order {
	return c.order
}

// AddLine adds quantity units of the named product to the order, taking them from stock.
// It fails with a *repository.NotFoundError for an unknown product, a *domain.ValidationError for a
// non-positive quantity, or a *domain.InsufficientStockError when stock is short.
func (c *Checkout) AddLine(productName string, quantity int) (*domain.OrderLine, error) {
	product, err := c.registry.products.GetProductByName(productName)
	if err != nil {
		return nil, err
	}

	line, err := c.order.AddLine(product, quantity)
	if err != nil {
		return nil, err
	}

	c.registry.logger.Debug(
		"order_line_added",
		"customer_id", c.order.Customer().ID,
		"product", productName,
		"quantity", quantity,
		"stock", product.Stock(),
	)
	return line, nil
}

// Finalize closes the order and records it in the registry.
func (c *Checkout) Finalize() (*domain.Order, error) {
	if err := c.order.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize order: %w", err)
	}

	c.registry.orders.AppendOrder(c.order)
	c.registry.logger.Info(
		"order_finalized",
		"customer_id", c.order.Customer().ID,
		"lines", len(c.order.Lines()),
		"total", domain.FormatAmount(c.order.Total()),
	)
	return c.order, nil
}

// Cancel abandons the order and returns its stock. The order is not recorded.
func (c *Checkout) Cancel() error {
	if err := c.order.Cancel(); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}

	c.registry.logger.Info(
		"order_cancelled",
		"customer_id", c.order.Customer().ID,
		"lines", len(c.order.Lines()),
	)
	return nil
}
