package ports

import (
	"context"

	"github.com/middletrust/escrow-api/internal/domain"
	"github.com/middletrust/escrow-api/internal/domain/escrow"
)

// CreateEscrowInput carries boundary-validated input for creating an escrow.
// Amount arrives raw (string) and is normalized by the lifecycle engine.
type CreateEscrowInput struct {
	ProductName   string
	Category      string
	Logistics     escrow.Logistics
	Amount        string
	Currency      escrow.Currency
	Role          escrow.Role
	Description   string
	PhotoURL      string
	Color         string
	ReceiverID    string
	ReceiverEmail string
	TradeStatus   escrow.TradeStatus
}

// CreatedEscrow is the result of a successful Create: the persisted record
// plus a shareable reference for out-of-band invitation delivery.
type CreatedEscrow struct {
	Escrow   *escrow.Escrow
	ShareURL string
}

// InvitationDecision is the result of an accept or decline operation.
type InvitationDecision struct {
	Success  bool
	EscrowID string
}

// EscrowView is the visibility-gated result of a detail fetch. When Denied
// is set the escrow is complete and the caller is not a participant: the
// record exists but no data is exposed.
type EscrowView struct {
	Escrow      *escrow.Escrow
	DisplayRole escrow.Role
	Denied      bool
}

// ListRequest holds pagination parameters for ListMine.
type ListRequest struct {
	// Limit is the page size, 1..50; zero selects the default of 20.
	Limit int
	// Cursor is the id of the last item of the previous page; empty starts
	// from the newest record.
	Cursor string
}

// ListPage is one page of escrows in descending creation order. NextCursor
// is empty when the listing is exhausted.
type ListPage struct {
	Items      []escrow.Escrow
	NextCursor string
}

// EscrowService defines the service port for the escrow lifecycle engine.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every operation takes the resolved principal explicitly.
type EscrowService interface {
	// Create validates input, normalizes the amount, and persists a new
	// escrow with the creator's slot filled and the invitation pending.
	// Returns domain.ErrValidation for malformed input, including a
	// receiver equal to the creator (self-escrow).
	Create(ctx context.Context, principal domain.Principal, input CreateEscrowInput) (*CreatedEscrow, error)

	// AcceptInvitation binds the caller to the open counterpart slot and
	// marks the invitation accepted. Idempotent for callers who already
	// occupy a slot. Returns domain.ErrNotFound if the escrow does not
	// exist, domain.ErrForbidden if the caller is the creator, and
	// domain.ErrConflict when concurrent acceptors exhaust the bounded
	// conditional-update retries.
	AcceptInvitation(ctx context.Context, principal domain.Principal, escrowID string) (*InvitationDecision, error)

	// DeclineInvitation marks the invitation declined. The caller must be
	// a participant or the escrow must still be joinable; otherwise
	// domain.ErrForbidden. Returns domain.ErrNotFound if absent.
	DeclineInvitation(ctx context.Context, principal domain.Principal, escrowID string) (*InvitationDecision, error)

	// GetByID loads an escrow for the caller. Participants get the full
	// record; a non-participant on a joinable escrow gets
	// domain.ErrForbidden; a non-participant on a complete escrow gets a
	// denied view without error.
	GetByID(ctx context.Context, principal domain.Principal, escrowID string) (*EscrowView, error)

	// ListMine returns escrows where the caller is creator, buyer, or
	// seller, newest first, with cursor pagination.
	ListMine(ctx context.Context, principal domain.Principal, req ListRequest) (*ListPage, error)
}
