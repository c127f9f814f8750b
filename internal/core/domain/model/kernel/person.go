package kernel

import (
	"net/mail"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// Person-detail value objects shared by billing information, shipping
// recipients and customers. Each one is a trimmed, required string with its
// own constructor; Email additionally validates the address format.

var (
	// ErrFullNameIsNotConstructed is returned when validating a zero-value FullName.
	ErrFullNameIsNotConstructed = errs.NewValueIsRequiredError("FullName must be created via NewFullName")
	// ErrDocumentIsNotConstructed is returned when validating a zero-value Document.
	ErrDocumentIsNotConstructed = errs.NewValueIsRequiredError("Document must be created via NewDocument")
	// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
	ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")
	// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
	ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("Email must be created via NewEmail")
)

// FullName is a person's display name.
type FullName struct {
	value string
	guard guard.ConstructorGuard
}

// NewFullName creates a FullName. Blank input fails with a
// ValueIsRequiredError.
func NewFullName(value string) (FullName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return FullName{}, errs.NewValueIsRequiredError("fullName")
	}

	return FullName{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrFullNameIsNotConstructed for the zero value.
func (f FullName) Validate() error {
	return f.guard.Validate(ErrFullNameIsNotConstructed)
}

// Value returns the name.
func (f FullName) Value() string {
	return f.value
}

// String implements fmt.Stringer.
func (f FullName) String() string {
	return f.value
}

// Document is a person's identification document number.
type Document struct {
	value string
	guard guard.ConstructorGuard
}

// NewDocument creates a Document. Blank input fails with a
// ValueIsRequiredError.
func NewDocument(value string) (Document, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Document{}, errs.NewValueIsRequiredError("document")
	}

	return Document{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrDocumentIsNotConstructed for the zero value.
func (d Document) Validate() error {
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

// Value returns the document number.
func (d Document) Value() string {
	return d.value
}

// Phone is a person's contact phone number.
type Phone struct {
	value string
	guard guard.ConstructorGuard
}

// NewPhone creates a Phone. Blank input fails with a ValueIsRequiredError.
func NewPhone(value string) (Phone, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}

	return Phone{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// Value returns the phone number.
func (p Phone) Value() string {
	return p.value
}

// Email is a validated e-mail address.
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail creates an Email. The value is trimmed; blank input fails with a
// ValueIsRequiredError and anything that does not parse as a plain address
// fails with a ValueIsInvalidError.
func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(trimmed)
	if err != nil || parsed.Address != trimmed {
		return Email{}, errs.NewValueIsInvalidError("email is invalid")
	}

	return Email{value: trimmed, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrEmailIsNotConstructed for the zero value.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// Value returns the address.
func (e Email) Value() string {
	return e.value
}
