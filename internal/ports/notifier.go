package ports

import (
	"context"

	"github.com/middletrust/escrow-api/internal/domain/escrow"
)

// InvitationEvent names a lifecycle transition worth broadcasting.
type InvitationEvent string

const (
	EventInvitationCreated  InvitationEvent = "invitation.created"
	EventInvitationAccepted InvitationEvent = "invitation.accepted"
	EventInvitationDeclined InvitationEvent = "invitation.declined"
)

// EscrowNotifier delivers invitation lifecycle events to interested
// out-of-band consumers (webhook endpoints). Delivery is best-effort: the
// lifecycle engine logs failures but never fails the originating request.
type EscrowNotifier interface {
	// NotifyInvitation posts the event for the given escrow to all
	// configured endpoints.
	NotifyInvitation(ctx context.Context, event InvitationEvent, e *escrow.Escrow) error
}
