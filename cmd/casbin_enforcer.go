//go:build casbin

package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/CameronXie/ecommerce-cli/internal/decisionmaker/casbin"
	"github.com/CameronXie/ecommerce-cli/internal/enforcer"
)

// getConfig returns a string representation of the Casbin configuration model for request, policy, role definitions,
// policy effect, and matchers.
func getConfig() string {
	return `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`
}

// getPolicy returns the role permissions followed by one grouping line per operator role.
func getPolicy() string {
	lines := []string{
		"p, admin, customers, create",
		"p, admin, products, create",
		"p, admin, orders, create",
		"p, admin, orders, read",
		"p, sales, customers, create",
		"p, sales, orders, create",
		"p, sales, orders, read",
		"p, reporting, orders, read",
	}

	for _, operator := range slices.Sorted(maps.Keys(operatorRoles)) {
		for _, role := range operatorRoles[operator] {
			lines = append(lines, fmt.Sprintf("g, %s, %s", operator, role))
		}
	}

	return strings.Join(lines, "\n")
}

// newEnforcer initializes a Casbin backed enforcer for the built-in operators.
func newEnforcer(logger *slog.Logger) (enforcer.Enforcer, error) {
	logger.Info("initializing enforcer with Casbin")

	decisionMaker, err := casbin.NewDecisionMaker(getConfig(), stringadapter.NewAdapter(getPolicy()))
	if err != nil {
		return nil, err
	}

	return enforcer.NewEnforcer(decisionMaker), nil
}
