// Package money rounds monetary amounts with decimal-safe arithmetic.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places used for all displayed and
// submitted amounts.
const DefaultPrecision = 2

var ErrInvalidNumber = errors.New("money: not a finite number")

// Round rounds half away from zero to places decimal places.
func Round(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}

// Round2 rounds half away from zero to the default two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(DefaultPrecision)
}

// FromFloat converts a float coming off the wire into a decimal amount.
// NaN and infinities are rejected with ErrInvalidNumber.
func FromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, ErrInvalidNumber
	}
	return decimal.NewFromFloat(f), nil
}
