package dto_test

import (
	"testing"
	"time"

	"github.com/middletrust/escrow-api/internal/adapters/http/dto"
	"github.com/middletrust/escrow-api/internal/domain/escrow"
	"github.com/middletrust/escrow-api/internal/ports"
)

func sampleEscrow() *escrow.Escrow {
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
		CreatedAt:        time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC),
		UpdatedAt:        time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC),
	}
}

func TestToEscrowResponse(t *testing.T) {
	t.Parallel()

	e := sampleEscrow()
	got := dto.ToEscrowResponse(e, escrow.RoleBuyer)

	if got.ID != "esc-1" {
		t.Errorf("ID = %q, want %q", got.ID, "esc-1")
	}
	if got.DisplayRole != "BUYER" {
		t.Errorf("DisplayRole = %q, want %q", got.DisplayRole, "BUYER")
	}
	if got.SellerID == nil || *got.SellerID != "user-1" {
		t.Errorf("SellerID = %v, want user-1", got.SellerID)
	}
	if got.BuyerID != nil {
		t.Errorf("BuyerID = %v, want nil for open slot", got.BuyerID)
	}
	if got.Complete {
		t.Error("Complete = true, want false with an open slot")
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", got.CreatedAt)
	}
}

func TestToEscrowResponse_Complete(t *testing.T) {
	t.Parallel()

	e := sampleEscrow()
	buyer := "user-2"
	e.BuyerID = &buyer

	if got := dto.ToEscrowResponse(e, e.Role); !got.Complete {
		t.Error("Complete = false, want true with both slots filled")
	}
}

func TestToCreateEscrowResponse(t *testing.T) {
	t.Parallel()

	created := &ports.CreatedEscrow{
		Escrow:   sampleEscrow(),
		ShareURL: "http://localhost:8080/escrow/esc-1",
	}

	got := dto.ToCreateEscrowResponse(created)

	if got.ShareURL != created.ShareURL {
		t.Errorf("ShareURL = %q, want %q", got.ShareURL, created.ShareURL)
	}
	if got.Escrow.DisplayRole != "SELLER" {
		t.Errorf("DisplayRole = %q, want creator's declared role", got.Escrow.DisplayRole)
	}
}

func TestToEscrowListResponse(t *testing.T) {
	t.Parallel()

	page := &ports.ListPage{
		Items:      []escrow.Escrow{*sampleEscrow(), *sampleEscrow()},
		NextCursor: "esc-0",
	}

	got := dto.ToEscrowListResponse(page)

	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}
	if len(got.Escrows) != 2 {
		t.Fatalf("len(Escrows) = %d, want 2", len(got.Escrows))
	}
	if got.NextCursor != "esc-0" {
		t.Errorf("NextCursor = %q, want %q", got.NextCursor, "esc-0")
	}
	if got.Escrows[0].DisplayRole != "" {
		t.Errorf("DisplayRole = %q, want empty for list items", got.Escrows[0].DisplayRole)
	}
}

func TestToEscrowListResponse_Empty(t *testing.T) {
	t.Parallel()

	got := dto.ToEscrowListResponse(&ports.ListPage{})

	if got.Count != 0 {
		t.Errorf("Count = %d, want 0", got.Count)
	}
	if got.NextCursor != "" {
		t.Errorf("NextCursor = %q, want empty", got.NextCursor)
	}
}
