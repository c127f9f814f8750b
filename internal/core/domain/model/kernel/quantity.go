package kernel

import (
	"errors"
	"fmt"
	"strconv"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when validating a zero-value
// Quantity that was not created through NewQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("Quantity must be created via NewQuantity")

// ZeroQuantity is the canonical zero quantity. It is a properly constructed
// value and passes validation.
var ZeroQuantity = Quantity{value: 0, guard: guard.NewConstructorGuard()}

// Quantity is a non-negative integer amount of units. It is immutable;
// addition returns a new instance.
type Quantity struct {
	value int
	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity. Negative values fail with a
// ValueIsInvalidError.
func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", value),
		)
	}

	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrQuantityIsNotConstructed for the zero value.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the number of units.
func (q Quantity) Value() int {
	return q.value
}

// String implements fmt.Stringer.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

// Add returns a new Quantity equal to the sum of both quantities.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if err := errors.Join(q.Validate(), other.Validate()); err != nil {
		return Quantity{}, err
	}

	return NewQuantity(q.value + other.value)
}

// Cmp compares two quantities: -1 when q is less than other, 0 when equal,
// +1 when greater.
func (q Quantity) Cmp(other Quantity) (int, error) {
	if err := errors.Join(q.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	switch {
	case q.value < other.value:
		return -1, nil
	case q.value > other.value:
		return 1, nil
	default:
		return 0, nil
	}
}
