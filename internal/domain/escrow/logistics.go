package escrow

// Logistics describes how the traded goods change hands.
type Logistics string

const (
	LogisticsNone     Logistics = "no"
	LogisticsPickup   Logistics = "pickup"
	LogisticsDelivery Logistics = "delivery"
)

// IsValid returns true if the logistics value is one of the defined constants.
func (l Logistics) IsValid() bool {
	switch l {
	case LogisticsNone, LogisticsPickup, LogisticsDelivery:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (l Logistics) String() string {
	return string(l)
}
