//go:build !casbin || opa

package main

import (
	"log/slog"

	"github.com/CameronXie/ecommerce-cli/internal/enforcer"

	pdp "github.com/CameronXie/ecommerce-cli/internal/decisionmaker/opa"
	pip "github.com/CameronXie/ecommerce-cli/internal/infoprovider/opa"
	prp "github.com/CameronXie/ecommerce-cli/internal/policyretriever/opa"
)

// getPolicy returns the Rego policy granting menu operations to operator roles.
func getPolicy() string {
	return `
package shop

role_permissions := {
    "admin": [
        {"action": "create", "resource": "customers"},
        {"action": "create", "resource": "products"},
        {"action": "create", "resource": "orders"},
        {"action": "read", "resource": "orders"},
    ],
    "sales": [
        {"action": "create", "resource": "customers"},
        {"action": "create", "resource": "orders"},
        {"action": "read", "resource": "orders"},
    ],
    "reporting": [{"action": "read", "resource": "orders"}],
}

default allow = false

allow {
    # for each role the operator holds
    r := input.roles[_]
    # lookup the permissions list for role r
    permissions := role_permissions[r]
    # for each permission
    p := permissions[_]
    # check if the permission granted to r matches the operator's request
    p == {"action": input.action, "resource": input.resource}
}
`
}

// newEnforcer initializes an OPA backed enforcer for the built-in operators.
func newEnforcer(logger *slog.Logger) (enforcer.Enforcer, error) {
	logger.Info("initializing enforcer with OPA")

	decisionMaker := pdp.NewDecisionMaker(
		prp.NewHardcodedPolicyRetriever(getPolicy()),
		pip.NewHardcodedInfoProvider(operatorRoles),
		"data.shop.allow",
	)

	return enforcer.NewEnforcer(decisionMaker), nil
}
