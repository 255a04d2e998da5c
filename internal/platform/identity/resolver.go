package identity

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/middletrust/escrow-api/internal/domain"
)

// Resolver verifies bearer credentials and yields a principal. API keys are
// checked before session tokens, mirroring the external-API-first flow of
// the original credential resolution.
type Resolver struct {
	sessionSecret []byte
	apiKeys       map[string]string // key -> user id
	parser        *jwt.Parser
}

// NewResolver creates a Resolver. sessionSecret signs session JWTs (HS256);
// apiKeys maps static API credentials to the user ids they act as.
func NewResolver(sessionSecret string, apiKeys map[string]string) *Resolver {
	keys := make(map[string]string, len(apiKeys))
	for k, v := range apiKeys {
		keys[k] = v
	}
	return &Resolver{
		sessionSecret: []byte(sessionSecret),
		apiKeys:       keys,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Resolve verifies a raw bearer token and returns the principal it
// authenticates. Returns domain.ErrUnauthenticated when the token is
// empty, unknown, or fails verification.
func (r *Resolver) Resolve(token string) (domain.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Principal{}, fmt.Errorf("missing bearer token: %w", domain.ErrUnauthenticated)
	}

	if userID, ok := r.apiKeys[token]; ok {
		return domain.Principal{ID: userID, Method: domain.AuthAPIKey}, nil
	}

	userID, err := r.verifySession(token)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("verifying session token: %w", domain.ErrUnauthenticated)
	}
	return domain.Principal{ID: userID, Method: domain.AuthSession}, nil
}

// verifySession parses an HS256 session JWT and returns its subject.
func (r *Resolver) verifySession(token string) (string, error) {
	if len(r.sessionSecret) == 0 {
		return "", fmt.Errorf("session verification not configured")
	}

	claims := &jwt.RegisteredClaims{}
	_, err := r.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return r.sessionSecret, nil
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", fmt.Errorf("session token has no subject")
	}
	return claims.Subject, nil
}
