package opa

import (
	"fmt"

	"github.com/CameronXie/ecommerce-cli/internal/infoprovider"
)

type hardcodedInfoProvider struct {
	operators map[string][]string
}

// GetRoles returns the roles of the given operator.
// It returns an error if the operator is unknown.
func (p *hardcodedInfoProvider) GetRoles(id string) ([]string, error) {
	if roles, ok := p.operators[id]; ok {
		return roles, nil
	}

	return nil, fmt.Errorf("operator %s not found", id)
}

// NewHardcodedInfoProvider initializes a new InfoProvider with a map of operators and their roles.
func NewHardcodedInfoProvider(operators map[string][]string) infoprovider.InfoProvider {
	return &hardcodedInfoProvider{operators: operators}
}
