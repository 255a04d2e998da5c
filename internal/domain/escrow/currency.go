package escrow

// Currency is the ISO-style code of the trade currency.
type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
	CurrencyGHS Currency = "GHS"
)

// IsValid returns true if the currency is one of the supported codes.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyNGN, CurrencyUSD, CurrencyGHS:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return string(c)
}

// Source is the provenance tag recording which channel created the escrow.
// Informational only; it never influences the state machine.
type Source string

const (
	SourceInternal Source = "INTERNAL"
	SourceAPI      Source = "API"
)

// IsValid returns true if the source is one of the defined constants.
func (s Source) IsValid() bool {
	switch s {
	case SourceInternal, SourceAPI:
		return true
	default:
		return false
	}
}
