package domain

// AuthMethod records which credential flow authenticated a principal.
type AuthMethod string

const (
	AuthSession AuthMethod = "session"
	AuthAPIKey  AuthMethod = "api_key"
)

// Principal is an authenticated caller identity: a user holding a session
// token or an API-credential holder. Every core operation receives the
// principal explicitly; nothing reads ambient request state.
type Principal struct {
	ID     string
	Method AuthMethod
}

// IsZero reports whether the principal is unresolved.
func (p Principal) IsZero() bool {
	return p.ID == ""
}
