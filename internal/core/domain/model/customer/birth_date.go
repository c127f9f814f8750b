package customer

import (
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrBirthDateIsNotConstructed is returned when validating a zero-value BirthDate.
var ErrBirthDateIsNotConstructed = errs.NewValueIsRequiredError("BirthDate must be created via NewBirthDate")

// BirthDate is a customer's date of birth. The date may not lie in the
// future; day granularity is what matters.
type BirthDate struct {
	value time.Time
	guard guard.ConstructorGuard
}

// NewBirthDate creates a BirthDate. A zero time fails with a
// ValueIsRequiredError and a future date with a ValueIsInvalidError.
func NewBirthDate(value time.Time) (BirthDate, error) {
	if value.IsZero() {
		return BirthDate{}, errs.NewValueIsRequiredError("birthDate")
	}

	if value.After(time.Now()) {
		return BirthDate{}, errs.NewValueIsInvalidErrorWithCause(
			"birthDate is invalid",
			fmt.Errorf("%s is in the future", value.Format("2006-01-02")),
		)
	}

	return BirthDate{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrBirthDateIsNotConstructed for the zero value.
func (b BirthDate) Validate() error {
	return b.guard.Validate(ErrBirthDateIsNotConstructed)
}

// Value returns the date of birth.
func (b BirthDate) Value() time.Time {
	return b.value
}

// Age returns the customer's age in whole years as of now.
func (b BirthDate) Age() int {
	now := time.Now()
	age := now.Year() - b.value.Year()

	if now.Month() < b.value.Month() ||
		(now.Month() == b.value.Month() && now.Day() < b.value.Day()) {
		age--
	}

	return age
}
