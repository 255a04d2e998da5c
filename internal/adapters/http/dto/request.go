package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/middletrust/escrow-api/internal/domain"
	"github.com/middletrust/escrow-api/internal/domain/escrow"
	"github.com/middletrust/escrow-api/internal/ports"
)

// wireRoles maps the lowercase role values on the wire to the domain enum.
var wireRoles = map[string]escrow.Role{
	"buyer":  escrow.RoleBuyer,
	"seller": escrow.RoleSeller,
}

// Amount accepts either JSON representation clients send for monetary
// values: a formatted string ("25,000.00") or a bare number. The raw text
// is preserved for the normalizer.
type Amount string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number")
	}
	*a = Amount(n.String())
	return nil
}

// CreateEscrowRequest represents the JSON body for creating a new escrow.
type CreateEscrowRequest struct {
	ProductName   string `json:"product_name"`
	Category      string `json:"category,omitempty"`
	Logistics     string `json:"logistics"`
	Amount        Amount `json:"amount"`
	Currency      string `json:"currency"`
	Role          string `json:"role"`
	Description   string `json:"description,omitempty"`
	PhotoURL      string `json:"photo_url,omitempty"`
	Color         string `json:"color,omitempty"`
	ReceiverID    string `json:"receiver_id,omitempty"`
	ReceiverEmail string `json:"receiver_email,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Validate checks that required fields are present and enum fields carry
// known values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateEscrowRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ProductName) == "" {
		fields["product_name"] = domain.MsgRequired
	}
	if strings.TrimSpace(string(r.Amount)) == "" {
		fields["amount"] = domain.MsgRequired
	}
	if _, ok := wireRoles[r.Role]; !ok {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}
	if !escrow.Logistics(r.Logistics).IsValid() {
		fields["logistics"] = fmt.Sprintf("invalid: %q", r.Logistics)
	}
	if !escrow.Currency(r.Currency).IsValid() {
		fields["currency"] = fmt.Sprintf("invalid: %q", r.Currency)
	}
	if r.Status != "" && !escrow.TradeStatus(r.Status).IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", r.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput converts the validated request to the service-layer input.
// An omitted trade status defaults to pending.
func (r *CreateEscrowRequest) ToInput() ports.CreateEscrowInput {
	status := escrow.TradeStatus(r.Status)
	if r.Status == "" {
		status = escrow.TradePending
	}

	return ports.CreateEscrowInput{
		ProductName:   r.ProductName,
		Category:      r.Category,
		Logistics:     escrow.Logistics(r.Logistics),
		Amount:        string(r.Amount),
		Currency:      escrow.Currency(r.Currency),
		Role:          wireRoles[r.Role],
		Description:   r.Description,
		PhotoURL:      r.PhotoURL,
		Color:         r.Color,
		ReceiverID:    r.ReceiverID,
		ReceiverEmail: r.ReceiverEmail,
		TradeStatus:   status,
	}
}
