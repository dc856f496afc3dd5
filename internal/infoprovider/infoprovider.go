package infoprovider

// InfoProvider resolves the roles held by an operator.
type InfoProvider interface {
	GetRoles(id string) ([]string, error)
}
