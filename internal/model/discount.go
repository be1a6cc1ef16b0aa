package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrDiscountOutOfRange is returned when a discount is not a fraction in [0, 1].
var ErrDiscountOutOfRange = errors.New("discount must be between 0 and 1")

// ValidateDiscount checks that discount is within [0, 1].
func ValidateDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: got %s", ErrDiscountOutOfRange, discount.String())
	}
	return nil
}
