package accounts

// Token type discriminators carried in JWT claims. A refresh token can never
// be used where an access token is expected and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPair is the result of a successful credential exchange
type TokenPair struct {
	Access  string
	Refresh string
}
