// Package customer holds the Customer aggregate: registration data, loyalty
// point accrual and the archival flow that blanks identifying fields.
package customer

import (
	"fmt"
	"strconv"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrLoyaltyPointsAreNotConstructed is returned when validating a zero-value LoyaltyPoints.
var ErrLoyaltyPointsAreNotConstructed = errs.NewValueIsRequiredError("LoyaltyPoints must be created via NewLoyaltyPoints")

// ZeroLoyaltyPoints is the canonical empty balance new customers start with.
var ZeroLoyaltyPoints = LoyaltyPoints{guard: guard.NewConstructorGuard()}

// LoyaltyPoints is a non-negative point balance.
type LoyaltyPoints struct {
	value int
	guard guard.ConstructorGuard
}

// NewLoyaltyPoints creates a LoyaltyPoints balance. Negative values fail with
// a ValueIsInvalidError.
func NewLoyaltyPoints(value int) (LoyaltyPoints, error) {
	if value < 0 {
		return LoyaltyPoints{}, errs.NewValueIsInvalidErrorWithCause(
			"loyalty points are invalid",
			fmt.Errorf("%d is negative", value),
		)
	}

	return LoyaltyPoints{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrLoyaltyPointsAreNotConstructed for the zero value.
func (l LoyaltyPoints) Validate() error {
	return l.guard.Validate(ErrLoyaltyPointsAreNotConstructed)
}

// Value returns the point balance.
func (l LoyaltyPoints) Value() int {
	return l.value
}

// String implements fmt.Stringer.
func (l LoyaltyPoints) String() string {
	return strconv.Itoa(l.value)
}

// Add returns a new balance increased by other. The added amount must be a
// positive balance; adding zero points is rejected as a caller mistake.
func (l LoyaltyPoints) Add(other LoyaltyPoints) (LoyaltyPoints, error) {
	if err := l.Validate(); err != nil {
		return LoyaltyPoints{}, err
	}
	if err := other.Validate(); err != nil {
		return LoyaltyPoints{}, err
	}

	if other.value == 0 {
		return LoyaltyPoints{}, errs.NewValueIsInvalidErrorWithCause(
			"loyalty points are invalid",
			fmt.Errorf("cannot add zero points"),
		)
	}

	return NewLoyaltyPoints(l.value + other.value)
}
