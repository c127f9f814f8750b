package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrBillingIsNotConstructed is returned when validating a zero-value Billing.
var ErrBillingIsNotConstructed = errs.NewValueIsRequiredError("Billing must be created via NewBilling")

// Billing holds the invoicing details of an order: who is charged and at what
// address.
type Billing struct { //nolint:recvcheck // pointer receivers on private setters for construction
	fullName kernel.FullName
	document kernel.Document
	phone    kernel.Phone
	email    kernel.Email
	address  kernel.Address

	guard guard.ConstructorGuard
}

// NewBilling creates a Billing value from constructed person values and a
// constructed address.
func NewBilling(
	fullName kernel.FullName,
	document kernel.Document,
	phone kernel.Phone,
	email kernel.Email,
	address kernel.Address,
) (Billing, error) {
	b := Billing{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setFullName(fullName),
		b.setDocument(document),
		b.setPhone(phone),
		b.setEmail(email),
		b.setAddress(address),
	); err != nil {
		return Billing{}, err
	}

	return b, nil
}

// Validate returns ErrBillingIsNotConstructed for the zero value.
func (b Billing) Validate() error {
	return b.guard.Validate(ErrBillingIsNotConstructed)
}

// FullName returns the invoiced person's name.
func (b Billing) FullName() kernel.FullName {
	return b.fullName
}

// Document returns the invoiced person's identification document.
func (b Billing) Document() kernel.Document {
	return b.document
}

// Phone returns the invoiced person's contact phone.
func (b Billing) Phone() kernel.Phone {
	return b.phone
}

// Email returns the invoiced person's e-mail address.
func (b Billing) Email() kernel.Email {
	return b.email
}

// Address returns the billing address.
func (b Billing) Address() kernel.Address {
	return b.address
}

func (b *Billing) setFullName(fullName kernel.FullName) error {
	if err := fullName.Validate(); err != nil {
		return err
	}

	b.fullName = fullName
	return nil
}

func (b *Billing) setDocument(document kernel.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}

	b.document = document
	return nil
}

func (b *Billing) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	b.phone = phone
	return nil
}

func (b *Billing) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	b.email = email
	return nil
}

func (b *Billing) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	b.address = address
	return nil
}
