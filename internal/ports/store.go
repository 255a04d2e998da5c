package ports

import (
	"context"

	"github.com/middletrust/escrow-api/internal/domain/escrow"
)

// EscrowStore defines the outbound port to the escrow record store.
// Implementations must guarantee single-record atomicity: ClaimSlot is a
// conditional update that either observes the slot open and fills it, or
// fails without side effects.
type EscrowStore interface {
	// Create persists a new escrow record.
	Create(ctx context.Context, e *escrow.Escrow) error

	// Get returns the escrow with the given id.
	// Returns domain.ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (*escrow.Escrow, error)

	// ClaimSlot atomically fills the given slot with userID and marks the
	// invitation accepted, but only if the slot is currently open. Returns
	// false (and no error) when the precondition no longer holds, which
	// signals the caller to re-read and re-derive the open slot.
	// Returns domain.ErrNotFound if no record exists.
	ClaimSlot(ctx context.Context, id string, slot escrow.Slot, userID string) (bool, error)

	// SetInvitationStatus updates only the invitation status.
	// Returns domain.ErrNotFound if no record exists.
	SetInvitationStatus(ctx context.Context, id string, status escrow.InvitationStatus) error

	// ListByParticipant returns up to limit escrows where userID is the
	// creator, buyer, or seller, in descending creation order (id as
	// tiebreak). A non-empty cursor resumes strictly after the record with
	// that id in the same ordering.
	ListByParticipant(ctx context.Context, userID string, limit int, cursor string) ([]escrow.Escrow, error)
}
