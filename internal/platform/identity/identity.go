// Package identity resolves request credentials to an authenticated
// principal and propagates it through the request context.
//
// Two credential flows are supported, both presented as
// "Authorization: Bearer <token>":
//
//   - session tokens: HS256 JWTs whose subject is the user id
//   - API credentials: static keys mapped to a user id in configuration
//
// Resolution happens in middleware before any lifecycle engine operation
// runs; operations receive the principal as an explicit argument.
package identity

import (
	"context"

	"github.com/middletrust/escrow-api/internal/domain"
)

// principalKey is the unexported key type for storing principals in context.
type principalKey struct{}

// WithPrincipal returns a new context carrying the resolved principal.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext extracts the resolved principal from the context.
// The second return is false when no principal is stored.
func FromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok && !p.IsZero()
}
