package opa

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"

	"github.com/CameronXie/ecommerce-cli/internal/decisionmaker"
	"github.com/CameronXie/ecommerce-cli/internal/infoprovider"
	"github.com/CameronXie/ecommerce-cli/internal/policyretriever"
)

const (
	moduleName = "decisionmaker"
)

type decisionMaker struct {
	policyRetriever policyretriever.PolicyRetriever
	infoProvider    infoprovider.InfoProvider
	query           string
}

// MakeDecision evaluates the Rego policy with the operator's roles, the action and the resource as input.
// The query must evaluate to a boolean.
func (d *decisionMaker) MakeDecision(ctx context.Context, req *decisionmaker.DecisionRequest) (bool, error) {
	policy, err := d.policyRetriever.GetPolicy()
	if err != nil {
		return false, fmt.Errorf("failed to get policy: %w", err)
	}

	query, err := rego.New(rego.Module(moduleName, policy), rego.Query(d.query)).PrepareForEval(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to prepare query: %w", err)
	}

	roles, err := d.infoProvider.GetRoles(req.Subject)
	if err != nil {
		return false, fmt.Errorf("failed to get roles: %w", err)
	}

	result, err := query.Eval(ctx, rego.EvalInput(map[string]any{
		"roles":    roles,
		"action":   req.Action,
		"resource": req.Resource,
	}))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate query: %w", err)
	}

	if len(result) == 0 || len(result[0].Expressions) == 0 {
		return false, fmt.Errorf("query %s produced no result", d.query)
	}

	allowed, ok := result[0].Expressions[0].Value.(bool)
	if !ok {
		return false, fmt.Errorf("query %s produced non-boolean result %v", d.query, result[0].Expressions[0].Value)
	}

	return allowed, nil
}

// NewDecisionMaker initializes a DecisionMaker with the provided PolicyRetriever, InfoProvider, and Rego query.
func NewDecisionMaker(
	policyRetriever policyretriever.PolicyRetriever,
	infoProvider infoprovider.InfoProvider,
	query string,
) decisionmaker.DecisionMaker {
	return &decisionMaker{
		policyRetriever: policyRetriever,
		infoProvider:    infoProvider,
		query:           query,
	}
}
