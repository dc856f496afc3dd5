package enforcer

import (
	"context"
	"strings"

	"github.com/CameronXie/ecommerce-cli/internal/decisionmaker"
)

// Resources and actions guarded by the shell menu.
const (
	ResourceCustomers = "customers"
	ResourceProducts  = "products"
	ResourceOrders    = "orders"

	ActionCreate = "create"
	ActionRead   = "read"
)

type Enforcer interface {
	Enforce(ctx context.Context, req *AccessRequest) (bool, error)
}

// AccessRequest describes an operator attempting a menu operation.
type AccessRequest struct {
	Subject  string
	Resource string
	Action   string
}

type enforcer struct {
	decisionMaker decisionmaker.DecisionMaker
}

func (e *enforcer) Enforce(ctx context.Context, req *AccessRequest) (bool, error) {
	return e.decisionMaker.MakeDecision(
		ctx,
		&decisionmaker.DecisionRequest{
			Subject:  strings.ToLower(strings.TrimSpace(req.Subject)),
			Resource: strings.ToLower(req.Resource),
			Action:   strings.ToLower(req.Action),
		},
	)
}

func NewEnforcer(decisionMaker decisionmaker.DecisionMaker) Enforcer {
	return &enforcer{decisionMaker: decisionMaker}
}
