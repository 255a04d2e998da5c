package escrow

// InvitationStatus tracks whether the invited counterpart has responded.
// It is independent of the trade's own TradeStatus.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// IsValid returns true if the status is one of the defined constants.
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationDeclined:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s InvitationStatus) String() string {
	return string(s)
}

// TradeStatus is the business status of the trade itself.
type TradeStatus string

const (
	TradePending   TradeStatus = "PENDING"
	TradeCompleted TradeStatus = "COMPLETED"
	TradeCancelled TradeStatus = "CANCELLED"
)

// IsValid returns true if the status is one of the defined constants.
func (s TradeStatus) IsValid() bool {
	switch s {
	case TradePending, TradeCompleted, TradeCancelled:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s TradeStatus) String() string {
	return string(s)
}
