// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/middletrust/escrow-api/internal/domain"
	"github.com/middletrust/escrow-api/internal/domain/escrow"
	"github.com/middletrust/escrow-api/internal/platform/telemetry"
	"github.com/middletrust/escrow-api/internal/ports"
)

// Compile-time check that EscrowService implements ports.EscrowService.
var _ ports.EscrowService = (*EscrowService)(nil)

const (
	defaultPageLimit = 20
	maxPageLimit     = 50

	// maxClaimAttempts bounds the re-read/re-claim loop when a conditional
	// slot update loses a race. Two acceptors can invalidate each other's
	// precondition at most once per open slot, so three attempts is ample.
	maxClaimAttempts = 3
)

// EscrowService implements ports.EscrowService. It owns the invitation and
// role-assignment state machine for a single escrow record: creation,
// slot claiming on acceptance, declining, and the visibility predicates in
// front of reads. All state lives in the store; the service holds none.
type EscrowService struct {
	store    ports.EscrowStore
	notifier ports.EscrowNotifier
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	baseURL  string
}

// NewEscrowService creates an EscrowService. The notifier may be nil, in
// which case lifecycle events are not broadcast. baseURL is the public
// application URL used to build shareable invitation links. metrics may be
// nil; recording is then skipped.
func NewEscrowService(
	store ports.EscrowStore,
	notifier ports.EscrowNotifier,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	baseURL string,
) *EscrowService {
	return &EscrowService{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

// Create validates the input, normalizes the amount, and persists a new
// escrow with the creator occupying the slot matching their declared role.
// A supplied receiver id immediately fills the counterpart slot.
func (s *EscrowService) Create(ctx context.Context, principal domain.Principal, input ports.CreateEscrowInput) (*ports.CreatedEscrow, error) {
	s.logger.InfoContext(ctx, "creating escrow",
		slog.String("creator_id", principal.ID),
		slog.String("role", input.Role.String()),
	)

	if input.ReceiverID != "" && input.ReceiverID == principal.ID {
		return nil, &domain.ValidationError{
			Fields: map[string]string{"receiver_id": "creator and receiver cannot be the same user"},
		}
	}

	amount, err := escrow.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	e := &escrow.Escrow{
		ID:               uuid.NewString(),
		CreatorID:        principal.ID,
		Role:             input.Role,
		InvitedRole:      input.Role.Complement(),
		InvitationStatus: escrow.InvitationPending,
		TradeStatus:      escrow.TradePending,
		Amount:           amount,
		Currency:         input.Currency,
		ProductName:      input.ProductName,
		Category:         input.Category,
		Logistics:        input.Logistics,
		Description:      input.Description,
		PhotoURL:         input.PhotoURL,
		Color:            input.Color,
		ReceiverEmail:    input.ReceiverEmail,
		Source:           sourceFor(principal),
	}
	if input.TradeStatus != "" {
		e.TradeStatus = input.TradeStatus
	}

	// The creator fills their own slot; a pre-targeted receiver fills the
	// counterpart slot right away.
	creatorID := principal.ID
	if input.Role == escrow.RoleBuyer {
		e.BuyerID = &creatorID
		if input.ReceiverID != "" {
			receiverID := input.ReceiverID
			e.SellerID = &receiverID
		}
	} else {
		e.SellerID = &creatorID
		if input.ReceiverID != "" {
			receiverID := input.ReceiverID
			e.BuyerID = &receiverID
		}
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, e); err != nil {
		s.logger.ErrorContext(ctx, "failed to create escrow",
			slog.String("operation", "Create"),
			slog.String("creator_id", principal.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating escrow: %w", err)
	}

	if s.metrics != nil {
		s.metrics.EscrowCreatedTotal.Add(ctx, 1)
	}
	s.notify(ctx, ports.EventInvitationCreated, e)

	return &ports.CreatedEscrow{
		Escrow:   e,
		ShareURL: s.shareURL(e.ID),
	}, nil
}

// AcceptInvitation binds the caller to the open counterpart slot. The seller
// slot is always claimed before the buyer slot is considered; the precedence
// is fixed so racing acceptors converge on the same conditional update. A
// caller who already occupies a slot only flips the invitation status, which
// makes repeated accepts safe.
func (s *EscrowService) AcceptInvitation(ctx context.Context, principal domain.Principal, escrowID string) (*ports.InvitationDecision, error) {
	s.logger.InfoContext(ctx, "accepting invitation",
		slog.String("escrow_id", escrowID),
		slog.String("user_id", principal.ID),
	)

	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
		e, err := s.store.Get(ctx, escrowID)
		if err != nil {
			return nil, err
		}

		if e.IsCreator(principal.ID) {
			return nil, fmt.Errorf("creator cannot accept own escrow: %w", domain.ErrForbidden)
		}

		// Already a participant, or both slots held by others: only the
		// invitation status changes.
		slot := e.OpenSlot()
		if e.IsParticipant(principal.ID) || slot == escrow.SlotNone {
			if err := s.store.SetInvitationStatus(ctx, escrowID, escrow.InvitationAccepted); err != nil {
				return nil, err
			}
			e.InvitationStatus = escrow.InvitationAccepted
			s.recordDecision(ctx, "accepted")
			s.notify(ctx, ports.EventInvitationAccepted, e)
			return &ports.InvitationDecision{Success: true, EscrowID: escrowID}, nil
		}

		claimed, err := s.store.ClaimSlot(ctx, escrowID, slot, principal.ID)
		if err != nil {
			return nil, err
		}
		if claimed {
			// The snapshot predates the claim; fold the accepted state in so
			// the broadcast reflects what was persisted.
			userID := principal.ID
			if slot == escrow.SlotSeller {
				e.SellerID = &userID
			} else {
				e.BuyerID = &userID
			}
			e.InvitationStatus = escrow.InvitationAccepted
			s.recordDecision(ctx, "accepted")
			s.notify(ctx, ports.EventInvitationAccepted, e)
			return &ports.InvitationDecision{Success: true, EscrowID: escrowID}, nil
		}

		// Lost the conditional update; re-read and derive the other branch.
		s.logger.WarnContext(ctx, "slot claim lost race, retrying",
			slog.String("escrow_id", escrowID),
			slog.String("slot", string(slot)),
			slog.Int("attempt", attempt+1),
		)
	}

	return nil, fmt.Errorf("accepting invitation for escrow %s: %w", escrowID, domain.ErrConflict)
}

// DeclineInvitation marks the invitation declined. The caller must either
// already be a participant or hold a live invitation (escrow incomplete and
// pending); the creator and strangers to a settled record are rejected.
func (s *EscrowService) DeclineInvitation(ctx context.Context, principal domain.Principal, escrowID string) (*ports.InvitationDecision, error) {
	s.logger.InfoContext(ctx, "declining invitation",
		slog.String("escrow_id", escrowID),
		slog.String("user_id", principal.ID),
	)

	e, err := s.store.Get(ctx, escrowID)
	if err != nil {
		return nil, err
	}

	if e.IsCreator(principal.ID) {
		return nil, fmt.Errorf("creator cannot decline own escrow: %w", domain.ErrForbidden)
	}
	if !e.IsParticipant(principal.ID) && !e.NeedsJoin(principal.ID) {
		return nil, fmt.Errorf("not invited to escrow %s: %w", escrowID, domain.ErrForbidden)
	}

	if err := s.store.SetInvitationStatus(ctx, escrowID, escrow.InvitationDeclined); err != nil {
		return nil, err
	}

	e.InvitationStatus = escrow.InvitationDeclined
	s.recordDecision(ctx, "declined")
	s.notify(ctx, ports.EventInvitationDeclined, e)
	return &ports.InvitationDecision{Success: true}, nil
}

// GetByID loads an escrow behind the participant visibility gate. A
// non-participant hitting a complete escrow gets a denied view rather than
// an error, distinguishing "finished and private" from "not yet authorized".
func (s *EscrowService) GetByID(ctx context.Context, principal domain.Principal, escrowID string) (*ports.EscrowView, error) {
	e, err := s.store.Get(ctx, escrowID)
	if err != nil {
		return nil, err
	}

	if !e.IsParticipant(principal.ID) {
		if e.IsComplete() {
			return &ports.EscrowView{Denied: true}, nil
		}
		return nil, fmt.Errorf("not a participant of escrow %s: %w", escrowID, domain.ErrForbidden)
	}

	return &ports.EscrowView{
		Escrow:      e,
		DisplayRole: e.DisplayRole(principal.ID),
	}, nil
}

// ListMine returns one page of the caller's escrows, newest first. The store
// is asked for limit+1 rows; a full overflow row yields the next cursor.
func (s *EscrowService) ListMine(ctx context.Context, principal domain.Principal, req ports.ListRequest) (*ports.ListPage, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		return nil, &domain.ValidationError{
			Fields: map[string]string{"limit": fmt.Sprintf("must be 1-%d, got %d", maxPageLimit, limit)},
		}
	}

	items, err := s.store.ListByParticipant(ctx, principal.ID, limit+1, req.Cursor)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list escrows",
			slog.String("operation", "ListMine"),
			slog.String("user_id", principal.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	page := &ports.ListPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		page.NextCursor = page.Items[limit-1].ID
	}
	return page, nil
}

// notify broadcasts a lifecycle event. Delivery is best-effort: failures are
// logged and never surfaced to the caller.
func (s *EscrowService) notify(ctx context.Context, event ports.InvitationEvent, e *escrow.Escrow) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyInvitation(ctx, event, e); err != nil {
		s.logger.WarnContext(ctx, "invitation event delivery failed",
			slog.String("event", string(event)),
			slog.String("escrow_id", e.ID),
			slog.Any("error", err),
		)
	}
}

func (s *EscrowService) recordDecision(ctx context.Context, decision string) {
	if s.metrics == nil {
		return
	}
	s.metrics.InvitationDecisionTotal.Add(ctx, 1, telemetry.WithDecision(decision))
}

func (s *EscrowService) shareURL(id string) string {
	u, err := url.JoinPath(s.baseURL, "escrow", id)
	if err != nil {
		return s.baseURL + "/escrow/" + id
	}
	return u
}

// sourceFor tags provenance: API-credential callers produce API records,
// session callers produce internal ones.
func sourceFor(principal domain.Principal) escrow.Source {
	if principal.Method == domain.AuthAPIKey {
		return escrow.SourceAPI
	}
	return escrow.SourceInternal
}
