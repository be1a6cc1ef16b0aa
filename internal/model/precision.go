package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxExponent bounds the decimal exponent accepted for prices and discounts.
// Multiplying two decimals adds their exponents, which must stay within int32.
const MaxExponent = 64

// ErrUnsupportedPrecision is returned when a decimal's exponent is outside [-MaxExponent, MaxExponent].
var ErrUnsupportedPrecision = errors.New("decimal exponent out of supported range")

// ValidatePrecision checks that d can take part in price arithmetic.
func ValidatePrecision(d decimal.Decimal) error {
	if exp := d.Exponent(); exp < -MaxExponent || exp > MaxExponent {
		return fmt.Errorf("%w: exponent %d", ErrUnsupportedPrecision, exp)
	}
	return nil
}
