package decisionmaker

import "context"

// DecisionRequest asks whether Subject may perform Action on Resource.
type DecisionRequest struct {
	Subject  string
	Resource string
	Action   string
}

type DecisionMaker interface {
	MakeDecision(ctx context.Context, req *DecisionRequest) (bool, error)
}
