package registry

import (
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/CameronXie/ecommerce-cli/internal/domain"
	"github.com/CameronXie/ecommerce-cli/internal/repository"
)

func newStockedRegistry(t *testing.T, stock int) *Registry {
	t.Helper()

	r := New()
	r.RegisterCustomer("Ana", "000", "ana@example.com")
	_, err := r.RegisterProduct("Book", price("19.90"), stock)
	require.NoError(t, err)

	return r
}

func TestCheckout_AddLine(t *testing.T) {
	cases := map[string]struct {
		product       string
		quantity      int
		expectedStock int
		expectedErr   error
	}{
		"adds line and takes stock": {
			product:       "Book",
			quantity:      3,
			expectedStock: 7,
		},
		"unknown product": {
			product:       "Lamp",
			quantity:      1,
			expectedStock: 10,
			expectedErr: &repository.NotFoundError{
				Resource: repository.ProductResource,
				Key:      "name",
				Value:    "Lamp",
			},
		},
		"non-positive quantity": {
			product:       "Book",
			quantity:      0,
			expectedStock: 10,
			expectedErr:   &domain.ValidationError{Field: "quantity", Value: 0, Reason: "must be greater than zero"},
		},
		"more than stock": {
			product:       "Book",
			quantity:      11,
			expectedStock: 10,
			expectedErr:   &domain.InsufficientStockError{Product: "Book", Requested: 11, Available: 10},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := newStockedRegistry(t, 10)
			checkout, err := r.StartOrder("000")
			require.NoError(t, err)

			_, err = checkout.AddLine(tc.product, tc.quantity)
			assert.Equal(t, tc.expectedErr, err)

			book, err := r.Product("Book")
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStock, book.Stock())

			expectedLines := 1
			if tc.expectedErr != nil {
				expectedLines = 0
			}
			assert.Len(t, checkout.Order().Lines(), expectedLines)
		})
	}
}

func TestCheckout_Cancel(t *testing.T) {
	r := newStockedRegistry(t, 10)
	checkout, err := r.StartOrder("000")
	require.NoError(t, err)

	_, err = checkout.AddLine("Book", 4)
	require.NoError(t, err)
	require.NoError(t, checkout.Cancel())

	book, err := r.Product("Book")
	require.NoError(t, err)
	assert.Equal(t, 10, book.Stock())
	assert.Empty(t, slices.Collect(r.Orders()))

	assert.ErrorIs(t, checkout.Cancel(), domain.ErrOrderClosed)
	_, err = checkout.Finalize()
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
	_, err = checkout.AddLine("Book", 1)
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestCheckout_ConcurrentOrdersNeverOversell(t *testing.T) {
	const (
		stock     = 50
		shoppers  = 40
		linesEach = 3
	)

	r := newStockedRegistry(t, stock)
	var sold atomic.Int64

	g := new(errgroup.Group)
	for range shoppers {
		g.Go(func() error {
			checkout, err := r.StartOrder("000")
			if err != nil {
				return err
			}

			for range linesEach {
				if _, err := checkout.AddLine("Book", 1); err == nil {
					sold.Add(1)
				}
			}

			_, err = checkout.Finalize()
			return err
		})
	}
	require.NoError(t, g.Wait())

	book, err := r.Product("Book")
	require.NoError(t, err)
	assert.Equal(t, int64(stock), sold.Load())
	assert.Equal(t, 0, book.Stock())

	var recorded int
	for order := range r.Orders() {
		for _, line := range order.Lines() {
			recorded += line.Quantity()
		}
	}
	assert.Equal(t, stock, recorded)
	assert.Len(t, slices.Collect(r.Orders()), shoppers)
}
