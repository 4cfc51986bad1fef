package strategy

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a parsed investment amount. The zero value is invalid.
type Amount struct {
	value decimal.Decimal
	valid bool
}

// MaxAmount is the largest amount accepted for investment.
var MaxAmount = decimal.New(1, 15)

const (
	// maxScale is the most fractional digits an amount may carry.
	maxScale = 18
	// maxIntDigits is the integer digit count of MaxAmount.
	maxIntDigits = 16
)

// ValidAmount wraps d, rejecting non-positive and out-of-range values.
func ValidAmount(d decimal.Decimal) Amount {
	if !d.IsPositive() || !inRange(d) {
		return Amount{}
	}
	return Amount{value: d, valid: true}
}

// inRange checks magnitude from the coefficient and exponent alone, so a
// huge exponent is rejected before any arithmetic rescales it.
func inRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxScale {
		return false
	}
	intDigits := int64(d.NumDigits()) + exp
	if intDigits > maxIntDigits {
		return false
	}
	return d.LessThanOrEqual(MaxAmount)
}

// ParseAmount parses user input. Blank or non-numeric input and anything
// ValidAmount rejects yield an invalid Amount.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	return ValidAmount(d)
}

// Valid reports whether the amount can be invested.
func (a Amount) Valid() bool { return a.valid }

// Value returns the amount, zero when invalid.
func (a Amount) Value() decimal.Decimal {
	if !a.valid {
		return decimal.Zero
	}
	return a.value
}

func (a Amount) String() string {
	if !a.valid {
		return "invalid"
	}
	return a.value.String()
}
