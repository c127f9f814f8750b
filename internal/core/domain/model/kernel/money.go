package kernel

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyScale is the fixed number of decimal places every Money value carries.
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money that
// was not created through NewMoney or NewMoneyFromString.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or NewMoneyFromString")

// ZeroMoney is the canonical zero amount. It is a properly constructed value
// and passes validation.
var ZeroMoney = Money{value: decimal.Zero, guard: guard.NewConstructorGuard()}

// Money is a non-negative monetary amount with a fixed scale of two decimal
// places. Construction normalizes the amount with half-even (banker's)
// rounding; negative amounts are rejected.
//
// Money is immutable: every arithmetic operation returns a new instance and
// re-validates the non-negativity invariant on the result.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("99.995")
//	if err != nil {
//	    // handle invalid amount
//	}
//	price.String() // "100.00" after half-even rounding
type Money struct {
	value decimal.Decimal
	guard guard.ConstructorGuard
}

// NewMoney creates a Money from a decimal amount. The amount is rounded
// half-even to two decimal places. Negative amounts fail with a
// ValueIsInvalidError.
func NewMoney(value decimal.Decimal) (Money, error) {
	if value.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%s is negative", value),
		)
	}

	return Money{
		value: value.RoundBank(moneyScale),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromString parses a decimal string such as "10.50" into a Money.
// Blank or unparseable input fails with a ValueIsInvalidError; negative input
// is rejected the same way as in NewMoney.
func NewMoneyFromString(value string) (Money, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Money{}, errs.NewValueIsRequiredError("money")
	}

	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money is invalid", err)
	}

	return NewMoney(parsed)
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Value returns the underlying decimal amount.
func (m Money) Value() decimal.Decimal {
	return m.value
}

// String returns the amount formatted with exactly two decimal places, for
// example "10.00". It implements fmt.Stringer.
func (m Money) String() string {
	return m.value.StringFixed(moneyScale)
}

// Multiply returns a new Money equal to this amount times the quantity.
func (m Money) Multiply(quantity Quantity) (Money, error) {
	if err := errors.Join(m.Validate(), quantity.Validate()); err != nil {
		return Money{}, err
	}

	return NewMoney(m.value.Mul(decimal.NewFromInt(int64(quantity.Value()))))
}

// Divide returns a new Money equal to this amount divided by the quantity.
// Dividing by a zero quantity fails with a ValueIsInvalidError.
func (m Money) Divide(quantity Quantity) (Money, error) {
	if err := errors.Join(m.Validate(), quantity.Validate()); err != nil {
		return Money{}, err
	}

	if quantity.Value() == 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			errors.New("cannot divide money by a zero quantity"),
		)
	}

	return NewMoney(m.value.Div(decimal.NewFromInt(int64(quantity.Value()))))
}

// Add returns a new Money equal to the sum of both amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	return NewMoney(m.value.Add(other.value))
}

// Cmp compares two amounts: -1 when m is less than other, 0 when equal,
// +1 when greater.
func (m Money) Cmp(other Money) (int, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return m.value.Cmp(other.value), nil
}

// IsEqual reports whether both amounts are numerically equal.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.value.Equal(other.value), nil
}
