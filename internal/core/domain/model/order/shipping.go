package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrShippingIsNotConstructed is returned when validating a zero-value Shipping.
var ErrShippingIsNotConstructed = errs.NewValueIsRequiredError("Shipping must be created via NewShipping")

// Shipping bundles everything the order needs to deliver: the delivery cost,
// the expected delivery date, who receives it and where.
type Shipping struct { //nolint:recvcheck // pointer receivers on private setters for construction
	cost         kernel.Money
	expectedDate time.Time
	recipient    Recipient
	address      kernel.Address

	guard guard.ConstructorGuard
}

// NewShipping creates a Shipping value. The expected date must be set; whether
// it lies in the future is the aggregate's concern, checked when shipping is
// attached to an order.
func NewShipping(cost kernel.Money, expectedDate time.Time, recipient Recipient, address kernel.Address) (Shipping, error) {
	s := Shipping{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCost(cost),
		s.setExpectedDate(expectedDate),
		s.setRecipient(recipient),
		s.setAddress(address),
	); err != nil {
		return Shipping{}, err
	}

	return s, nil
}

// Validate returns ErrShippingIsNotConstructed for the zero value.
func (s Shipping) Validate() error {
	return s.guard.Validate(ErrShippingIsNotConstructed)
}

// Cost returns the delivery cost.
func (s Shipping) Cost() kernel.Money {
	return s.cost
}

// ExpectedDate returns the expected delivery date.
func (s Shipping) ExpectedDate() time.Time {
	return s.expectedDate
}

// Recipient returns who receives the shipment.
func (s Shipping) Recipient() Recipient {
	return s.recipient
}

// Address returns the delivery address.
func (s Shipping) Address() kernel.Address {
	return s.address
}

func (s *Shipping) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}

	s.cost = cost
	return nil
}

func (s *Shipping) setExpectedDate(expectedDate time.Time) error {
	if expectedDate.IsZero() {
		return errs.NewValueIsRequiredError("expectedDeliveryDate")
	}

	s.expectedDate = expectedDate
	return nil
}

func (s *Shipping) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	s.recipient = recipient
	return nil
}

func (s *Shipping) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	s.address = address
	return nil
}
