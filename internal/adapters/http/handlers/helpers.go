package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/middletrust/escrow-api/internal/adapters/http/dto"
	"github.com/middletrust/escrow-api/internal/domain"
	"github.com/middletrust/escrow-api/internal/platform/identity"
	"github.com/middletrust/escrow-api/internal/ports"
)

// principalFrom extracts the authenticated principal placed in the context
// by the auth middleware. Returns false after writing a 401 response when
// the principal is absent, which only happens on a route wiring mistake.
func principalFrom(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	principal, ok := identity.FromContext(r.Context())
	if !ok || principal.IsZero() {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
		return domain.Principal{}, false
	}
	return principal, true
}

// parseListRequest extracts pagination query parameters for list endpoints.
func parseListRequest(r *http.Request) (ports.ListRequest, error) {
	req := ports.ListRequest{Cursor: r.URL.Query().Get("cursor")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return ports.ListRequest{}, &domain.ValidationError{
				Fields: map[string]string{"limit": "must be a valid integer"},
			}
		}
		req.Limit = limit
	}

	return req, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
