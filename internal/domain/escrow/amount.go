package escrow

import (
	"math"
	"strconv"
	"strings"

	"github.com/middletrust/escrow-api/internal/domain"
)

// amountSeparators are grouping characters stripped before parsing.
// Clients send amounts like "1,500" or "1 500.25" for convenience.
const amountSeparators = ", "

// ParseAmount normalizes a client-supplied amount string to a finite
// positive decimal. Grouping separators and whitespace are stripped first.
// Returns a *domain.ValidationError wrapping domain.ErrValidation when the
// value does not parse, is not finite, or is not strictly positive.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(amountSeparators, r) {
			return -1
		}
		return r
	}, raw)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) || value <= 0 {
		return 0, &domain.ValidationError{
			Fields: map[string]string{"amount": "invalid amount"},
		}
	}
	return value, nil
}
