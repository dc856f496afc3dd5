package casbin

import (
	"context"
	"errors"
	"testing"

	"github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/CameronXie/ecommerce-cli/internal/decisionmaker"
)

const (
	policyPath = "testdata/policy.csv"
)

// mockEnforcer is a mock implementation of the casbin.IEnforcer interface used for testing purposes.
type mockEnforcer struct {
	casbin.IEnforcer
	mock.Mock
}

func (e *mockEnforcer) LoadPolicy() error {
	args := e.Called()
	return args.Error(0)
}

func (e *mockEnforcer) Enforce(rvals ...any) (bool, error) {
	args := e.Called(rvals...)
	return args.Bool(0), args.Error(1)
}

func TestDecisionMaker_MakeDecision(t *testing.T) {
	request := &decisionmaker.DecisionRequest{
		Subject:  "clerk",
		Resource: "orders",
		Action:   "create",
	}

	enforcer := new(mockEnforcer)
	enforcer.On("LoadPolicy").Return(nil)
	enforcer.On(
		"Enforce",
		request.Subject, request.Resource, request.Action,
	).Return(true, nil)

	decisionMaker := decisionMaker{enforcer: enforcer}
	decision, err := decisionMaker.MakeDecision(context.TODO(), request)

	assert.True(t, decision)
	assert.NoError(t, err)
	enforcer.AssertCalled(t, "Enforce", request.Subject, request.Resource, request.Action)
	enforcer.AssertNumberOfCalls(t, "LoadPolicy", 1)
	enforcer.AssertNumberOfCalls(t, "Enforce", 1)
}

func TestDecisionMaker_MakeDecisionLoadPolicyError(t *testing.T) {
	enforcer := new(mockEnforcer)
	enforcer.On("LoadPolicy").Return(errors.New("some error"))

	decisionMaker := decisionMaker{enforcer: enforcer}
	decision, err := decisionMaker.MakeDecision(context.TODO(), &decisionmaker.DecisionRequest{})

	assert.False(t, decision)
	assert.EqualError(t, err, "failed to load operator policy: some error")
	enforcer.AssertNotCalled(t, "Enforce")
}

func TestDecisionMaker_MakeDecisionEnforceError(t *testing.T) {
	request := &decisionmaker.DecisionRequest{Subject: "clerk", Resource: "orders", Action: "read"}

	enforcer := new(mockEnforcer)
	enforcer.On("LoadPolicy").Return(nil)
	enforcer.On("Enforce", request.Subject, request.Resource, request.Action).Return(true, errors.New("some error"))

	decisionMaker := decisionMaker{enforcer: enforcer}
	decision, err := decisionMaker.MakeDecision(context.TODO(), request)

	assert.False(t, decision)
	assert.EqualError(t, err, "failed to enforce read on orders for clerk: some error")
}

func TestNewDecisionMaker(t *testing.T) {
	d, err := NewDecisionMaker(getConfig(), fileadapter.NewAdapter(policyPath))
	assert.NoError(t, err)
	assert.NotNil(t, d)

	cases := map[string]struct {
		request        *decisionmaker.DecisionRequest
		expectDecision bool
		expectError    error
	}{
		"owner registers products": {
			request: &decisionmaker.DecisionRequest{
				Subject:  "owner",
				Resource: "products",
				Action:   "create",
			},
			expectDecision: true,
		},
		"clerk creates orders": {
			request: &decisionmaker.DecisionRequest{
				Subject:  "clerk",
				Resource: "orders",
				Action:   "create",
			},
			expectDecision: true,
		},
		"clerk cannot register products": {
			request: &decisionmaker.DecisionRequest{
				Subject:  "clerk",
				Resource: "products",
				Action:   "create",
			},
			expectDecision: false,
		},
		"auditor reads orders": {
			request: &decisionmaker.DecisionRequest{
				Subject:  "auditor",
				Resource: "orders",
				Action:   "read",
			},
			expectDecision: true,
		},
		"auditor cannot create orders": {
			request: &decisionmaker.DecisionRequest{
				Subject:  "auditor",
				Resource: "orders",
				Action:   "create",
			},
			expectDecision: false,
		},
		"unknown operator": {
			request: &decisionmaker.DecisionRequest{
				Subject:  "intruder",
				Resource: "orders",
				Action:   "read",
			},
			expectDecision: false,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			decision, err := d.MakeDecision(context.TODO(), tc.request)
			assert.Equal(t, tc.expectDecision, decision)
			assert.Equal(t, tc.expectError, err)
		})
	}
}

func TestNewDecisionMaker_StringAdapter(t *testing.T) {
	d, err := NewDecisionMaker(getConfig(), stringadapter.NewAdapter("p, admin, orders, read\ng, owner, admin"))
	assert.NoError(t, err)

	allowed, err := d.MakeDecision(context.TODO(), &decisionmaker.DecisionRequest{
		Subject:  "owner",
		Resource: "orders",
		Action:   "read",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestNewDecisionMaker_InvalidModel(t *testing.T) {
	d, err := NewDecisionMaker("[request_definition]\n", fileadapter.NewAdapter(policyPath))
	assert.ErrorContains(t, err, "failed to parse casbin model")
	assert.Nil(t, d)
}

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
