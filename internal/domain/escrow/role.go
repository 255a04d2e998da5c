package escrow

// Role identifies which side of the trade a party occupies.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller:
		return true
	default:
		return false
	}
}

// Complement returns the opposite role. A buyer's counterpart is a seller
// and vice versa.
func (r Role) Complement() Role {
	if r == RoleBuyer {
		return RoleSeller
	}
	return RoleBuyer
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// Slot identifies one of the two party positions on an escrow record.
type Slot string

const (
	SlotBuyer  Slot = "buyer"
	SlotSeller Slot = "seller"
	SlotNone   Slot = ""
)
