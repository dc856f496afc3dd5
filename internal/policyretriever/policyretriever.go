package policyretriever

// PolicyRetriever returns the policy source evaluated by a decision maker.
type PolicyRetriever interface {
	GetPolicy() (string, error)
}
