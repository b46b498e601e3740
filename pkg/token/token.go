package token

// Issuer produces an opaque credential artifact for an authenticated user.
// The authentication service treats the issued token as a black box.
type Issuer interface {
	Issue(userID string) (string, error)
}

// StaticIssuer returns a fixed token for every user. Test wiring only.
type StaticIssuer struct {
	Token string
}

// Issue implements Issuer.
func (s StaticIssuer) Issue(string) (string, error) {
	return s.Token, nil
}
