package opa

import (
	"errors"
	"strings"

	"github.com/CameronXie/ecommerce-cli/internal/policyretriever"
)

// ErrEmptyPolicy is returned when the retriever holds no Rego source.
var ErrEmptyPolicy = errors.New("operator policy is empty")

type hardcodedPolicyRetriever struct {
	policy string
}

// GetPolicy returns the Rego policy granting menu operations to operator roles.
func (p *hardcodedPolicyRetriever) GetPolicy() (string, error) {
	if strings.TrimSpace(p.policy) == "" {
		return "", ErrEmptyPolicy
	}

	return p.policy, nil
}

// NewHardcodedPolicyRetriever creates a PolicyRetriever serving the operator policy compiled into the binary.
func NewHardcodedPolicyRetriever(policy string) policyretriever.PolicyRetriever {
	return &hardcodedPolicyRetriever{
		policy: policy,
	}
}
