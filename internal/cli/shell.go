package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/CameronXie/ecommerce-cli/internal/domain"
	"github.com/CameronXie/ecommerce-cli/internal/enforcer"
	"github.com/CameronXie/ecommerce-cli/internal/registry"
	"github.com/CameronXie/ecommerce-cli/internal/repository"
)

const (
	menuText = `
--- E-commerce Menu ---
1. Register customer
2. Register product
3. Create order
4. List orders
0. Exit`

	invalidOptionMessage    = "invalid option"
	permissionDeniedMessage = "permission denied"
	inputTooLongMessage     = "input too long"

	// maxLineLength bounds a single answer; longer lines are discarded and asked again.
	maxLineLength = 64 * 1024
)

var (
	// errInputClosed is returned by prompt once the input has no more lines.
	errInputClosed = errors.New("input closed")

	errLineTooLong = errors.New("line exceeds maximum length")
)

// Shell is the interactive menu loop over a Registry.
type Shell struct {
	registry *registry.Registry
	enforcer enforcer.Enforcer
	operator string
	in       *bufio.Reader
	out      io.Writer
	logger   *slog.Logger
}

// NewShell creates a Shell reading commands from in and writing responses to out.
// Every menu operation is checked against e on behalf of operator.
func NewShell(
	reg *registry.Registry,
	e enforcer.Enforcer,
	operator string,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Shell {
	return &Shell{
		registry: reg,
		enforcer: e,
		operator: operator,
		in:       bufio.NewReaderSize(in, maxLineLength),
		out:      out,
		logger:   logger,
	}
}

// Run shows the menu and dispatches choices until the operator exits or the input ends.
// Business errors are reported to the operator and never end the loop.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println(menuText)
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return ignoreClosed(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.guard(ctx, enforcer.ResourceCustomers, enforcer.ActionCreate, s.registerCustomer)
		case "2":
			err = s.guard(ctx, enforcer.ResourceProducts, enforcer.ActionCreate, s.registerProduct)
		case "3":
			err = s.guard(ctx, enforcer.ResourceOrders, enforcer.ActionCreate, s.createOrder)
		case "4":
			err = s.guard(ctx, enforcer.ResourceOrders, enforcer.ActionRead, s.listOrders)
		case "0":
			s.println("Exiting...")
			return nil
		default:
			s.println(invalidOptionMessage)
		}

		if err != nil {
			return ignoreClosed(err)
		}
	}
}

// guard runs op when the operator may perform action on resource.
// A failed decision counts as a denial.
func (s *Shell) guard(ctx context.Context, resource, action string, op func(context.Context) error) error {
	allowed, err := s.enforcer.Enforce(ctx, &enforcer.AccessRequest{
		Subject:  s.operator,
		Resource: resource,
		Action:   action,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "enforce_failed", "operator", s.operator, "resource", resource, "action", action, "error", err)
	}

	if err != nil || !allowed {
		s.logger.InfoContext(ctx, "permission_denied", "operator", s.operator, "resource", resource, "action", action)
		s.println(permissionDeniedMessage)
		return nil
	}

	return op(ctx)
}

func (s *Shell) registerCustomer(_ context.Context) error {
	answers, err := s.promptAll("Name: ", "Tax ID: ", "Email: ")
	if err != nil {
		return err
	}

	customer := s.registry.RegisterCustomer(answers[0], answers[1], answers[2])
	s.printf("Customer registered: %s\n", customer)
	return nil
}

func (s *Shell) registerProduct(_ context.Context) error {
	answers, err := s.promptAll("Product name: ", "Price: ", "Stock: ")
	if err != nil {
		return err
	}

	price, err := decimal.NewFromString(answers[1])
	if err != nil {
		s.printf("invalid price: %q is not a number\n", answers[1])
		return nil
	}

	stock, err := strconv.Atoi(answers[2])
	if err != nil {
		s.printf("invalid stock: %q is not a whole number\n", answers[2])
		return nil
	}

	product, err := s.registry.RegisterProduct(answers[0], price, stock)
	if err != nil {
		s.println(describe(err))
		return nil
	}

	s.printf("Product registered: %s\n", product)
	return nil
}

func (s *Shell) listOrders(_ context.Context) error {
	n := 0
	for order := range s.registry.Orders() {
		n++
		s.printf("Order %d - Customer: %s\n", n, order.Customer().Person.Name)
		for _, line := range order.Lines() {
			s.printf("  %s x %d = %s\n", line.Product().Name(), line.Quantity(), domain.FormatAmount(line.Subtotal()))
		}
		s.printf("Total: %s\n\n", domain.FormatAmount(order.Total()))
	}

	if n == 0 {
		s.println("No orders recorded.")
	}

	return nil
}

// prompt writes label and reads one line of input.
// An over-long line is reported and the label is shown again.
func (s *Shell) prompt(label string) (string, error) {
	for {
		s.printf("%s", label)

		line, err := s.readLine()
		if errors.Is(err, errLineTooLong) {
			s.logger.Warn("input_discarded", "reason", err.Error())
			s.println(inputTooLongMessage)
			continue
		}
		if err != nil {
			return "", err
		}

		return strings.TrimSpace(line), nil
	}
}

// readLine reads one line, discarding the whole line when it does not fit the buffer.
func (s *Shell) readLine() (string, error) {
	line, isPrefix, err := s.in.ReadLine()
	if err != nil {
		return "", inputError(err)
	}
	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		if _, isPrefix, err = s.in.ReadLine(); err != nil {
			return "", inputError(err)
		}
	}

	return "", errLineTooLong
}

func inputError(err error) error {
	if errors.Is(err, io.EOF) {
		return errInputClosed
	}

	return fmt.Errorf("read input: %w", err)
}

func (s *Shell) promptAll(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := s.prompt(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}

	return answers, nil
}

func (s *Shell) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

// describe turns a business error into the one-line message shown to the operator.
func describe(err error) string {
	var (
		notFound   *repository.NotFoundError
		shortStock *domain.InsufficientStockError
		invalid    *domain.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		return notFound.Resource + " not found"
	case errors.As(err, &shortStock):
		return fmt.Sprintf("insufficient stock: requested %d, available %d", shortStock.Requested, shortStock.Available)
	case errors.As(err, &invalid):
		return fmt.Sprintf("invalid %s: %s", invalid.Field, invalid.Reason)
	case errors.Is(err, domain.ErrOrderClosed):
		return "order is closed"
	default:
		return err.Error()
	}
}

func ignoreClosed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}

	return err
}
