package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/middletrust/escrow-api/internal/adapters/http/middleware"
	"github.com/middletrust/escrow-api/internal/domain"
	"github.com/middletrust/escrow-api/internal/platform/identity"
)

func authHandler(t *testing.T) (http.Handler, *domain.Principal) {
	t.Helper()

	resolver := identity.NewResolver("", map[string]string{"key-1": "api-user"})

	var seen domain.Principal
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if p, ok := identity.FromContext(r.Context()); ok {
			seen = p
		}
	})

	return middleware.Auth(resolver)(next), &seen
}

func TestAuth_ValidCredential(t *testing.T) {
	t.Parallel()

	handler, seen := authHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/escrows", http.NoBody)
	req.Header.Set("Authorization", "Bearer key-1")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if seen.ID != "api-user" {
		t.Errorf("principal ID = %q, want %q", seen.ID, "api-user")
	}
	if seen.Method != domain.AuthAPIKey {
		t.Errorf("principal Method = %q, want %q", seen.Method, domain.AuthAPIKey)
	}
}

func TestAuth_RejectsRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer prefix", header: "key-1"},
		{name: "wrong scheme", header: "Basic key-1"},
		{name: "unknown credential", header: "Bearer nope"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler, seen := authHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/escrows", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			if seen.ID != "" {
				t.Errorf("handler ran with principal %+v, want request rejected", *seen)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q, want problem details", ct)
			}
		})
	}
}

func TestAuth_CaseInsensitiveBearer(t *testing.T) {
	t.Parallel()

	handler, seen := authHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/escrows", http.NoBody)
	req.Header.Set("Authorization", "bearer key-1")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if seen.ID != "api-user" {
		t.Errorf("principal ID = %q, want %q", seen.ID, "api-user")
	}
}
