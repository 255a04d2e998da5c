// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/middletrust/escrow-api/internal/domain/escrow"
	"github.com/middletrust/escrow-api/internal/ports"
)

// EscrowResponse represents a single escrow in HTTP responses.
// DisplayRole is the role from the caller's perspective; Complete is derived
// from both party slots being filled.
type EscrowResponse struct {
	ID               string  `json:"id"`
	CreatorID        string  `json:"creator_id"`
	Role             string  `json:"role"`
	InvitedRole      string  `json:"invited_role"`
	DisplayRole      string  `json:"display_role,omitempty"`
	BuyerID          *string `json:"buyer_id"`
	SellerID         *string `json:"seller_id"`
	InvitationStatus string  `json:"invitation_status"`
	Status           string  `json:"status"`
	Complete         bool    `json:"complete"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	ProductName      string  `json:"product_name"`
	Category         string  `json:"category,omitempty"`
	Logistics        string  `json:"logistics"`
	Description      string  `json:"description,omitempty"`
	PhotoURL         string  `json:"photo_url,omitempty"`
	Color            string  `json:"color,omitempty"`
	ReceiverEmail    string  `json:"receiver_email,omitempty"`
	Source           string  `json:"source"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// CreateEscrowResponse wraps the created escrow with its shareable
// invitation URL.
type CreateEscrowResponse struct {
	Escrow   EscrowResponse `json:"escrow"`
	ShareURL string         `json:"share_url"`
}

// DecisionResponse represents the outcome of an accept or decline call.
type DecisionResponse struct {
	Success  bool   `json:"success"`
	EscrowID string `json:"escrow_id"`
}

// DeniedEscrowResponse is returned to non-participants of a complete escrow:
// the record exists but exposes no data.
type DeniedEscrowResponse struct {
	ID     string `json:"id"`
	Denied bool   `json:"denied"`
}

// EscrowListResponse represents one page of the caller's escrows.
type EscrowListResponse struct {
	Escrows    []EscrowResponse `json:"escrows"`
	Count      int              `json:"count"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

// ToEscrowResponse converts a domain escrow to an HTTP response DTO.
// displayRole may be empty for list items, where perspective is implicit.
func ToEscrowResponse(e *escrow.Escrow, displayRole escrow.Role) EscrowResponse {
	return EscrowResponse{
		ID:               e.ID,
		CreatorID:        e.CreatorID,
		Role:             e.Role.String(),
		InvitedRole:      e.InvitedRole.String(),
		DisplayRole:      displayRole.String(),
		BuyerID:          e.BuyerID,
		SellerID:         e.SellerID,
		InvitationStatus: e.InvitationStatus.String(),
		Status:           e.TradeStatus.String(),
		Complete:         e.IsComplete(),
		Amount:           e.Amount,
		Currency:         string(e.Currency),
		ProductName:      e.ProductName,
		Category:         e.Category,
		Logistics:        string(e.Logistics),
		Description:      e.Description,
		PhotoURL:         e.PhotoURL,
		Color:            e.Color,
		ReceiverEmail:    e.ReceiverEmail,
		Source:           string(e.Source),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCreateEscrowResponse converts a service create result to an HTTP
// response DTO.
func ToCreateEscrowResponse(created *ports.CreatedEscrow) CreateEscrowResponse {
	return CreateEscrowResponse{
		Escrow:   ToEscrowResponse(created.Escrow, created.Escrow.Role),
		ShareURL: created.ShareURL,
	}
}

// ToDecisionResponse converts a service decision result to an HTTP
// response DTO.
func ToDecisionResponse(d *ports.InvitationDecision) DecisionResponse {
	return DecisionResponse{
		Success:  d.Success,
		EscrowID: d.EscrowID,
	}
}

// ToEscrowListResponse converts one service page to an HTTP list response.
func ToEscrowListResponse(page *ports.ListPage) EscrowListResponse {
	items := make([]EscrowResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToEscrowResponse(&page.Items[i], "")
	}
	return EscrowListResponse{
		Escrows:    items,
		Count:      len(items),
		NextCursor: page.NextCursor,
	}
}
