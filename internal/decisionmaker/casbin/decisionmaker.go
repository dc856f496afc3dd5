package casbin

import (
	"context"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"

	"github.com/CameronXie/ecommerce-cli/internal/decisionmaker"
)

type decisionMaker struct {
	enforcer casbin.IEnforcer
}

// MakeDecision reports whether the operator in req may perform the action on the resource.
// The policy is reloaded before every decision so edits to the backing adapter apply immediately.
func (d *decisionMaker) MakeDecision(_ context.Context, req *decisionmaker.DecisionRequest) (bool, error) {
	if err := d.enforcer.LoadPolicy(); err != nil {
		return false, fmt.Errorf("failed to load operator policy: %w", err)
	}

	allowed, err := d.enforcer.Enforce(req.Subject, req.Resource, req.Action)
	if err != nil {
		return false, fmt.Errorf("failed to enforce %s on %s for %s: %w", req.Action, req.Resource, req.Subject, err)
	}

	return allowed, nil
}

// NewDecisionMaker creates a DecisionMaker from a Casbin model definition and a policy adapter.
func NewDecisionMaker(config string, policyRepo persist.Adapter) (decisionmaker.DecisionMaker, error) {
	m, err := model.NewModelFromString(config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, policyRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	return &decisionMaker{enforcer: enforcer}, nil
}
