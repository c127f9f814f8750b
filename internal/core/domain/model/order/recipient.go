package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when validating a zero-value Recipient.
var ErrRecipientIsNotConstructed = errs.NewValueIsRequiredError("Recipient must be created via NewRecipient")

// Recipient identifies the person receiving the shipment. It may differ from
// the customer who placed the order.
type Recipient struct { //nolint:recvcheck // pointer receivers on private setters for construction
	fullName kernel.FullName
	document kernel.Document
	phone    kernel.Phone

	guard guard.ConstructorGuard
}

// NewRecipient creates a Recipient from constructed person values.
func NewRecipient(fullName kernel.FullName, document kernel.Document, phone kernel.Phone) (Recipient, error) {
	r := Recipient{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setFullName(fullName),
		r.setDocument(document),
		r.setPhone(phone),
	); err != nil {
		return Recipient{}, err
	}

	return r, nil
}

// Validate returns ErrRecipientIsNotConstructed for the zero value.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// FullName returns the recipient's name.
func (r Recipient) FullName() kernel.FullName {
	return r.fullName
}

// Document returns the recipient's identification document.
func (r Recipient) Document() kernel.Document {
	return r.document
}

// Phone returns the recipient's contact phone.
func (r Recipient) Phone() kernel.Phone {
	return r.phone
}

func (r *Recipient) setFullName(fullName kernel.FullName) error {
	if err := fullName.Validate(); err != nil {
		return err
	}

	r.fullName = fullName
	return nil
}

func (r *Recipient) setDocument(document kernel.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}

	r.document = document
	return nil
}

func (r *Recipient) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	r.phone = phone
	return nil
}
