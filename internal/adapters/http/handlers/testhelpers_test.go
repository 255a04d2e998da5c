package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/middletrust/escrow-api/internal/domain"
	"github.com/middletrust/escrow-api/internal/domain/escrow"
	"github.com/middletrust/escrow-api/internal/platform/identity"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

var testPrincipal = domain.Principal{ID: "user-1", Method: domain.AuthSession}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withPrincipal(r *http.Request, p domain.Principal) *http.Request {
	return r.WithContext(identity.WithPrincipal(r.Context(), p))
}

func validEscrow() *escrow.Escrow {
	creator := "user-1"
	return &escrow.Escrow{
		ID:               "esc-1",
		CreatorID:        creator,
		Role:             escrow.RoleSeller,
		InvitedRole:      escrow.RoleBuyer,
		SellerID:         &creator,
		InvitationStatus: escrow.InvitationPending,
		TradeStatus:      escrow.TradePending,
		Amount:           25000,
		Currency:         escrow.CurrencyNGN,
		ProductName:      "MacBook Pro",
		Logistics:        escrow.LogisticsDelivery,
		Source:           escrow.SourceInternal,
		CreatedAt:        testTime,
		UpdatedAt:        testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
