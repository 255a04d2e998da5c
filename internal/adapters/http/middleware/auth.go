package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/middletrust/escrow-api/internal/adapters/http/dto"
	"github.com/middletrust/escrow-api/internal/platform/identity"
	"github.com/middletrust/escrow-api/internal/platform/logging"
)

const headerAuthorization = "Authorization"

// Auth returns middleware that resolves the bearer credential on each
// request into a principal stored in the request context. Requests without
// a valid credential receive a 401 problem-details response and never reach
// the handler.
func Auth(resolver *identity.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := resolver.Resolve(bearerToken(r))
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "authentication failed",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := identity.WithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns an empty string when the header is absent or malformed.
func bearerToken(r *http.Request) string {
	header := r.Header.Get(headerAuthorization)
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
