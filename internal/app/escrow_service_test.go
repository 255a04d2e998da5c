package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/middletrust/escrow-api/internal/app"
	"github.com/middletrust/escrow-api/internal/domain"
	"github.com/middletrust/escrow-api/internal/domain/escrow"
	"github.com/middletrust/escrow-api/internal/ports"
	"github.com/middletrust/escrow-api/mocks"
)

const testBaseURL = "http://localhost:8080"

var (
	creatorPrincipal  = domain.Principal{ID: "user-1", Method: domain.AuthSession}
	acceptorPrincipal = domain.Principal{ID: "user-2", Method: domain.AuthSession}
	apiPrincipal      = domain.Principal{ID: "api-user", Method: domain.AuthAPIKey}
)

func strPtr(s string) *string { return &s }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(store ports.EscrowStore, notifier ports.EscrowNotifier) *app.EscrowService {
	return app.NewEscrowService(store, notifier, nil, discardLogger(), testBaseURL)
}

func validInput() ports.CreateEscrowInput {
	return ports.CreateEscrowInput{
		ProductName: "MacBook Pro",
		Logistics:   escrow.LogisticsDelivery,
		Amount:      "25,000.00",
		Currency:    escrow.CurrencyNGN,
		Role:        escrow.RoleSeller,
		TradeStatus: escrow.TradePending,
	}
}

func pendingEscrow() *escrow.Escrow {
	return &escrow.Escrow{
		ID:               "esc-1",
		CreatorID:        "user-1",
		Role:             escrow.RoleSeller,
		InvitedRole:      escrow.RoleBuyer,
		SellerID:         strPtr("user-1"),
		InvitationStatus: escrow.InvitationPending,
		TradeStatus:      escrow.TradePending,
		Amount:           25000,
		Currency:         escrow.CurrencyNGN,
		ProductName:      "MacBook Pro",
		Logistics:        escrow.LogisticsDelivery,
		Source:           escrow.SourceInternal,
	}
}

// --- Create ---

func TestCreate_FillsCreatorSlot(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	var persisted *escrow.Escrow
	store.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *escrow.Escrow) { persisted = e }).
		Return(nil)

	created, err := svc.Create(context.Background(), creatorPrincipal, validInput())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if persisted.SellerID == nil || *persisted.SellerID != "user-1" {
		t.Errorf("SellerID = %v, want creator in seller slot", persisted.SellerID)
	}
	if persisted.BuyerID != nil {
		t.Errorf("BuyerID = %v, want open", persisted.BuyerID)
	}
	if persisted.Amount != 25000 {
		t.Errorf("Amount = %v, want 25000 after normalization", persisted.Amount)
	}
	if persisted.InvitedRole != escrow.RoleBuyer {
		t.Errorf("InvitedRole = %q, want buyer", persisted.InvitedRole)
	}
	if persisted.InvitationStatus != escrow.InvitationPending {
		t.Errorf("InvitationStatus = %q, want pending", persisted.InvitationStatus)
	}
	if persisted.Source != escrow.SourceInternal {
		t.Errorf("Source = %q, want internal for session caller", persisted.Source)
	}

	wantURL := testBaseURL + "/escrow/" + persisted.ID
	if created.ShareURL != wantURL {
		t.Errorf("ShareURL = %q, want %q", created.ShareURL, wantURL)
	}
}

func TestCreate_BuyerRoleWithReceiver(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	var persisted *escrow.Escrow
	store.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *escrow.Escrow) { persisted = e }).
		Return(nil)

	input := validInput()
	input.Role = escrow.RoleBuyer
	input.ReceiverID = "user-2"

	if _, err := svc.Create(context.Background(), creatorPrincipal, input); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if persisted.BuyerID == nil || *persisted.BuyerID != "user-1" {
		t.Errorf("BuyerID = %v, want creator", persisted.BuyerID)
	}
	if persisted.SellerID == nil || *persisted.SellerID != "user-2" {
		t.Errorf("SellerID = %v, want receiver", persisted.SellerID)
	}
	if !persisted.IsComplete() {
		t.Error("escrow with receiver should be complete at creation")
	}
}

func TestCreate_SelfEscrowRejected(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	input := validInput()
	input.ReceiverID = creatorPrincipal.ID

	_, err := svc.Create(context.Background(), creatorPrincipal, input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Create() = %v, want validation error", err)
	}
}

func TestCreate_InvalidAmount(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	input := validInput()
	input.Amount = "free"

	_, err := svc.Create(context.Background(), creatorPrincipal, input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Create() = %v, want validation error", err)
	}
}

func TestCreate_APIKeySource(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	var persisted *escrow.Escrow
	store.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *escrow.Escrow) { persisted = e }).
		Return(nil)

	if _, err := svc.Create(context.Background(), apiPrincipal, validInput()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if persisted.Source != escrow.SourceAPI {
		t.Errorf("Source = %q, want API for API-key caller", persisted.Source)
	}
}

func TestCreate_NotifiesEvent(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	notifier := mocks.NewMockEscrowNotifier(t)
	svc := newService(store, notifier)

	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyInvitation(mock.Anything, ports.EventInvitationCreated, mock.Anything).Return(nil)

	if _, err := svc.Create(context.Background(), creatorPrincipal, validInput()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
}

func TestCreate_NotifierFailureDoesNotFailRequest(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	notifier := mocks.NewMockEscrowNotifier(t)
	svc := newService(store, notifier)

	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyInvitation(mock.Anything, ports.EventInvitationCreated, mock.Anything).
		Return(errors.New("endpoint down"))

	if _, err := svc.Create(context.Background(), creatorPrincipal, validInput()); err != nil {
		t.Fatalf("Create() error: %v, want nil despite notifier failure", err)
	}
}

// --- AcceptInvitation ---

func TestAccept_ClaimsOpenSlot(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().Get(mock.Anything, "esc-1").Return(pendingEscrow(), nil)
	store.EXPECT().ClaimSlot(mock.Anything, "esc-1", escrow.SlotBuyer, "user-2").Return(true, nil)

	decision, err := svc.AcceptInvitation(context.Background(), acceptorPrincipal, "esc-1")
	if err != nil {
		t.Fatalf("AcceptInvitation() error: %v", err)
	}
	if !decision.Success {
		t.Error("Success = false, want true")
	}
	if decision.EscrowID != "esc-1" {
		t.Errorf("EscrowID = %q, want %q", decision.EscrowID, "esc-1")
	}
}

func TestAccept_BroadcastsClaimedState(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	notifier := mocks.NewMockEscrowNotifier(t)
	svc := newService(store, notifier)

	store.EXPECT().Get(mock.Anything, "esc-1").Return(pendingEscrow(), nil)
	store.EXPECT().ClaimSlot(mock.Anything, "esc-1", escrow.SlotBuyer, "user-2").Return(true, nil)

	var sent *escrow.Escrow
	notifier.EXPECT().NotifyInvitation(mock.Anything, ports.EventInvitationAccepted, mock.Anything).
		Run(func(_ context.Context, _ ports.InvitationEvent, e *escrow.Escrow) { sent = e }).
		Return(nil)

	if _, err := svc.AcceptInvitation(context.Background(), acceptorPrincipal, "esc-1"); err != nil {
		t.Fatalf("AcceptInvitation() error: %v", err)
	}

	if sent.BuyerID == nil || *sent.BuyerID != "user-2" {
		t.Errorf("notified BuyerID = %v, want claimed slot holder", sent.BuyerID)
	}
	if sent.InvitationStatus != escrow.InvitationAccepted {
		t.Errorf("notified InvitationStatus = %q, want accepted", sent.InvitationStatus)
	}
	if !sent.IsComplete() {
		t.Error("notified escrow should be complete after the claim")
	}
}

func TestAccept_CreatorForbidden(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().Get(mock.Anything, "esc-1").Return(pendingEscrow(), nil)

	_, err := svc.AcceptInvitation(context.Background(), creatorPrincipal, "esc-1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("AcceptInvitation() = %v, want forbidden", err)
	}
}

func TestAccept_IdempotentForParticipant(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	e := pendingEscrow()
	e.BuyerID = strPtr("user-2")
	e.InvitationStatus = escrow.InvitationAccepted

	store.EXPECT().Get(mock.Anything, "esc-1").Return(e, nil)
	store.EXPECT().SetInvitationStatus(mock.Anything, "esc-1", escrow.InvitationAccepted).Return(nil)

	decision, err := svc.AcceptInvitation(context.Background(), acceptorPrincipal, "esc-1")
	if err != nil {
		t.Fatalf("AcceptInvitation() error: %v", err)
	}
	if !decision.Success {
		t.Error("repeated accept should succeed")
	}
}

func TestAccept_RetriesAfterLostRace(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	open := pendingEscrow()

	// Another acceptor takes the buyer slot between the read and the claim;
	// the re-read shows a full escrow and the accept degrades to a status flip.
	full := pendingEscrow()
	full.BuyerID = strPtr("user-3")

	store.EXPECT().Get(mock.Anything, "esc-1").Return(open, nil).Once()
	store.EXPECT().ClaimSlot(mock.Anything, "esc-1", escrow.SlotBuyer, "user-2").Return(false, nil).Once()
	store.EXPECT().Get(mock.Anything, "esc-1").Return(full, nil).Once()
	store.EXPECT().SetInvitationStatus(mock.Anything, "esc-1", escrow.InvitationAccepted).Return(nil).Once()

	decision, err := svc.AcceptInvitation(context.Background(), acceptorPrincipal, "esc-1")
	if err != nil {
		t.Fatalf("AcceptInvitation() error: %v", err)
	}
	if !decision.Success {
		t.Error("Success = false, want true after retry")
	}
}

func TestAccept_ConflictAfterExhaustedRetries(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().Get(mock.Anything, "esc-1").Return(pendingEscrow(), nil).Times(3)
	store.EXPECT().ClaimSlot(mock.Anything, "esc-1", escrow.SlotBuyer, "user-2").Return(false, nil).Times(3)

	_, err := svc.AcceptInvitation(context.Background(), acceptorPrincipal, "esc-1")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("AcceptInvitation() = %v, want conflict", err)
	}
}

func TestAccept_NotFound(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := svc.AcceptInvitation(context.Background(), acceptorPrincipal, "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("AcceptInvitation() = %v, want not found", err)
	}
}

// --- DeclineInvitation ---

func TestDecline_InvitedStranger(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().Get(mock.Anything, "esc-1").Return(pendingEscrow(), nil)
	store.EXPECT().SetInvitationStatus(mock.Anything, "esc-1", escrow.InvitationDeclined).Return(nil)

	decision, err := svc.DeclineInvitation(context.Background(), acceptorPrincipal, "esc-1")
	if err != nil {
		t.Fatalf("DeclineInvitation() error: %v", err)
	}
	if !decision.Success {
		t.Error("Success = false, want true")
	}
}

func TestDecline_CreatorForbidden(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().Get(mock.Anything, "esc-1").Return(pendingEscrow(), nil)

	_, err := svc.DeclineInvitation(context.Background(), creatorPrincipal, "esc-1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("DeclineInvitation() = %v, want forbidden", err)
	}
}

func TestDecline_Participant(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	e := pendingEscrow()
	e.BuyerID = strPtr("user-2")

	store.EXPECT().Get(mock.Anything, "esc-1").Return(e, nil)
	store.EXPECT().SetInvitationStatus(mock.Anything, "esc-1", escrow.InvitationDeclined).Return(nil)

	if _, err := svc.DeclineInvitation(context.Background(), acceptorPrincipal, "esc-1"); err != nil {
		t.Fatalf("DeclineInvitation() error: %v", err)
	}
}

func TestDecline_StrangerOnSettledEscrow(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	e := pendingEscrow()
	e.BuyerID = strPtr("user-3")

	store.EXPECT().Get(mock.Anything, "esc-1").Return(e, nil)

	_, err := svc.DeclineInvitation(context.Background(), acceptorPrincipal, "esc-1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("DeclineInvitation() = %v, want forbidden", err)
	}
}

// --- GetByID ---

func TestGetByID_ParticipantView(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().Get(mock.Anything, "esc-1").Return(pendingEscrow(), nil)

	view, err := svc.GetByID(context.Background(), creatorPrincipal, "esc-1")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if view.Denied {
		t.Error("Denied = true, want false for participant")
	}
	if view.DisplayRole != escrow.RoleSeller {
		t.Errorf("DisplayRole = %q, want creator's declared role", view.DisplayRole)
	}
}

func TestGetByID_CounterpartDisplayRole(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	e := pendingEscrow()
	e.BuyerID = strPtr("user-2")
	store.EXPECT().Get(mock.Anything, "esc-1").Return(e, nil)

	view, err := svc.GetByID(context.Background(), acceptorPrincipal, "esc-1")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if view.DisplayRole != escrow.RoleBuyer {
		t.Errorf("DisplayRole = %q, want opposite of creator's role", view.DisplayRole)
	}
}

func TestGetByID_StrangerOnJoinableForbidden(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().Get(mock.Anything, "esc-1").Return(pendingEscrow(), nil)

	_, err := svc.GetByID(context.Background(), acceptorPrincipal, "esc-1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("GetByID() = %v, want forbidden", err)
	}
}

func TestGetByID_StrangerOnCompleteDenied(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	e := pendingEscrow()
	e.BuyerID = strPtr("user-3")
	store.EXPECT().Get(mock.Anything, "esc-1").Return(e, nil)

	view, err := svc.GetByID(context.Background(), acceptorPrincipal, "esc-1")
	if err != nil {
		t.Fatalf("GetByID() error: %v, want denied view not error", err)
	}
	if !view.Denied {
		t.Error("Denied = false, want true for stranger on complete escrow")
	}
}

// --- ListMine ---

func TestListMine_DefaultLimit(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().ListByParticipant(mock.Anything, "user-1", 21, "").
		Return([]escrow.Escrow{*pendingEscrow()}, nil)

	page, err := svc.ListMine(context.Background(), creatorPrincipal, ports.ListRequest{})
	if err != nil {
		t.Fatalf("ListMine() error: %v", err)
	}
	if len(page.Items) != 1 {
		t.Errorf("len(Items) = %d, want 1", len(page.Items))
	}
	if page.NextCursor != "" {
		t.Errorf("NextCursor = %q, want empty for short page", page.NextCursor)
	}
}

func TestListMine_OverflowYieldsCursor(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	items := make([]escrow.Escrow, 3)
	for i := range items {
		e := pendingEscrow()
		e.ID = string(rune('a' + i))
		items[i] = *e
	}

	store.EXPECT().ListByParticipant(mock.Anything, "user-1", 3, "").Return(items, nil)

	page, err := svc.ListMine(context.Background(), creatorPrincipal, ports.ListRequest{Limit: 2})
	if err != nil {
		t.Fatalf("ListMine() error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
	if page.NextCursor != "b" {
		t.Errorf("NextCursor = %q, want id of last returned item", page.NextCursor)
	}
}

func TestListMine_LimitTooLarge(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	_, err := svc.ListMine(context.Background(), creatorPrincipal, ports.ListRequest{Limit: 51})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("ListMine() = %v, want validation error", err)
	}
}

func TestListMine_CursorForwarded(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockEscrowStore(t)
	svc := newService(store, nil)

	store.EXPECT().ListByParticipant(mock.Anything, "user-1", 6, "esc-9").
		Return(nil, nil)

	if _, err := svc.ListMine(context.Background(), creatorPrincipal, ports.ListRequest{Limit: 5, Cursor: "esc-9"}); err != nil {
		t.Fatalf("ListMine() error: %v", err)
	}
}
