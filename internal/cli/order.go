package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/CameronXie/ecommerce-cli/internal/domain"
	"github.com/CameronXie/ecommerce-cli/internal/registry"
)

const (
	finishSentinel = "fim"
	cancelSentinel = "cancel"
)

// createOrder asks for a customer and then collects order lines until the operator finishes or cancels.
func (s *Shell) createOrder(ctx context.Context) error {
	taxID, err := s.prompt("Customer tax ID: ")
	if err != nil {
		return err
	}

	checkout, err := s.registry.StartOrder(taxID)
	if err != nil {
		s.println(describe(err))
		return nil
	}

	for {
		s.listProducts()

		name, err := s.prompt("Product name ('" + finishSentinel + "' to finish, '" + cancelSentinel + "' to abandon): ")
		if err != nil {
			return s.abandon(ctx, checkout, err)
		}

		switch {
		case strings.EqualFold(name, finishSentinel):
			order, err := checkout.Finalize()
			if err != nil {
				s.println(describe(err))
				return nil
			}
			s.printf("Order total: %s\n", domain.FormatAmount(order.Total()))
			return nil
		case strings.EqualFold(name, cancelSentinel):
			if err := checkout.Cancel(); err != nil {
				s.println(describe(err))
				return nil
			}
			s.println("Order cancelled, stock returned.")
			return nil
		}

		if _, err := s.registry.Product(name); err != nil {
			s.println(describe(err))
			continue
		}

		answer, err := s.prompt("Quantity: ")
		if err != nil {
			return s.abandon(ctx, checkout, err)
		}

		quantity, err := strconv.Atoi(answer)
		if err != nil {
			s.printf("invalid quantity: %q is not a whole number\n", answer)
			continue
		}

		line, err := checkout.AddLine(name, quantity)
		if err != nil {
			s.println(describe(err))
			continue
		}

		s.printf("Added %s x %d = %s\n", line.Product().Name(), line.Quantity(), domain.FormatAmount(line.Subtotal()))
	}
}

// abandon cancels an order interrupted by an input failure and returns that failure.
func (s *Shell) abandon(ctx context.Context, checkout *registry.Checkout, cause error) error {
	if err := checkout.Cancel(); err != nil {
		return errors.Join(cause, err)
	}

	s.logger.WarnContext(ctx, "order_abandoned", "customer_id", checkout.Order().Customer().ID, "error", cause)
	return cause
}

func (s *Shell) listProducts() {
	s.println("Available products:")
	for _, product := range s.registry.Products() {
		s.printf("%s - price: %s - stock: %d\n", product.Name(), domain.FormatAmount(product.Price()), product.Stock())
	}
}
