// Package escrow holds the escrow entity and the derived predicates that
// govern invitation handling: who occupies which slot, who may see a record,
// and which slot an acceptor is placed into.
package escrow

import (
	"fmt"
	"strings"
	"time"

	"github.com/middletrust/escrow-api/internal/domain"
)

// Escrow is a brokered trade between a creator and an invited counterpart.
// The creator occupies exactly one of the buyer/seller slots from the moment
// of creation; the other slot is filled by the invitation-acceptance flow.
type Escrow struct {
	ID        string
	CreatorID string

	// Role is the creator's declared side; InvitedRole is always its
	// complement. Both are immutable after creation.
	Role        Role
	InvitedRole Role

	// BuyerID and SellerID are the two party slots. Nil means open.
	BuyerID  *string
	SellerID *string

	InvitationStatus InvitationStatus
	TradeStatus      TradeStatus

	Amount   float64
	Currency Currency

	ProductName   string
	Category      string
	Logistics     Logistics
	Description   string
	PhotoURL      string
	Color         string
	ReceiverEmail string

	Source Source

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Escrow entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (e *Escrow) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.CreatorID) == "" {
		fields["creator_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.ProductName) == "" {
		fields["product_name"] = domain.MsgRequired
	}
	if !e.Role.IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", e.Role)
	}
	if e.InvitedRole != e.Role.Complement() {
		fields["invited_role"] = "must be the complement of role"
	}
	if !e.Logistics.IsValid() {
		fields["logistics"] = fmt.Sprintf("invalid: %q", e.Logistics)
	}
	if !e.Currency.IsValid() {
		fields["currency"] = fmt.Sprintf("invalid: %q", e.Currency)
	}
	if e.Amount <= 0 {
		fields["amount"] = fmt.Sprintf("must be positive, got %v", e.Amount)
	}
	if !e.InvitationStatus.IsValid() {
		fields["invitation_status"] = fmt.Sprintf("invalid: %q", e.InvitationStatus)
	}
	if !e.TradeStatus.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", e.TradeStatus)
	}

	// The creator must hold exactly one slot, and the counterpart slot may
	// never point back at the creator (no self-escrow).
	if !e.IsCreatorSlotted() {
		fields["creator_id"] = "creator must occupy the slot matching their role"
	}
	if counterpart := e.counterpartID(); counterpart != nil && *counterpart == e.CreatorID {
		fields["receiver_id"] = "creator and counterpart cannot be the same user"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsCreator reports whether userID is the escrow's creator.
func (e *Escrow) IsCreator(userID string) bool {
	return userID == e.CreatorID
}

// IsParticipant reports whether userID equals the creator, buyer, or seller.
func (e *Escrow) IsParticipant(userID string) bool {
	if userID == "" {
		return false
	}
	if userID == e.CreatorID {
		return true
	}
	if e.BuyerID != nil && *e.BuyerID == userID {
		return true
	}
	if e.SellerID != nil && *e.SellerID == userID {
		return true
	}
	return false
}

// IsComplete reports whether both party slots are filled. Completion is
// derived, never stored.
func (e *Escrow) IsComplete() bool {
	return e.BuyerID != nil && e.SellerID != nil
}

// NeedsJoin reports whether userID should be offered the accept-invitation
// affordance: not yet a participant, the counterpart slot still open, and
// the invitation still pending.
func (e *Escrow) NeedsJoin(userID string) bool {
	return !e.IsParticipant(userID) && !e.IsComplete() && e.InvitationStatus == InvitationPending
}

// DisplayRole returns the role to present to userID: the creator sees their
// declared role, any other participant is by construction playing the
// opposite side.
func (e *Escrow) DisplayRole(userID string) Role {
	if e.IsCreator(userID) {
		return e.Role
	}
	return e.Role.Complement()
}

// OpenSlot returns the slot an acceptor should be placed into. The seller
// slot always takes precedence over the buyer slot; the ordering is fixed
// and deterministic so concurrent acceptors racing through conditional
// updates converge on the same target. Returns SlotNone when both slots
// are filled.
func (e *Escrow) OpenSlot() Slot {
	if e.SellerID == nil {
		return SlotSeller
	}
	if e.BuyerID == nil {
		return SlotBuyer
	}
	return SlotNone
}

// IsCreatorSlotted reports whether the creator occupies the slot matching
// their declared role.
func (e *Escrow) IsCreatorSlotted() bool {
	if e.Role == RoleBuyer {
		return e.BuyerID != nil && *e.BuyerID == e.CreatorID
	}
	return e.SellerID != nil && *e.SellerID == e.CreatorID
}

// counterpartID returns the id in the slot opposite the creator's declared
// role, or nil when that slot is open.
func (e *Escrow) counterpartID() *string {
	if e.Role == RoleBuyer {
		return e.SellerID
	}
	return e.BuyerID
}
