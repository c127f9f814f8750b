package kernel

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// zipCodeLength is the exact number of characters a zip code must have.
const zipCodeLength = 5

// anonymousValue replaces identifying address fields when an address is
// anonymized for archival.
const anonymousValue = "anonymous"

var (
	// ErrZipCodeIsNotConstructed is returned when validating a zero-value
	// ZipCode that was not created through NewZipCode.
	ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError("ZipCode must be created via NewZipCode")

	// ErrAddressIsNotConstructed is returned when validating a zero-value
	// Address that was not created through NewAddress.
	ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")
)

// ZipCode is a postal code of exactly five characters.
type ZipCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewZipCode creates a ZipCode from a string. The value is trimmed; blank
// input fails with a ValueIsRequiredError and any trimmed value that is not
// exactly five characters fails with a ValueIsInvalidError.
func NewZipCode(value string) (ZipCode, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ZipCode{}, errs.NewValueIsRequiredError("zipCode")
	}

	if len(trimmed) != zipCodeLength {
		return ZipCode{}, errs.NewValueIsInvalidErrorWithCause(
			"zipCode is invalid",
			fmt.Errorf("%q must have exactly %d characters", trimmed, zipCodeLength),
		)
	}

	return ZipCode{
		value: trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrZipCodeIsNotConstructed for the zero value.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// Value returns the postal code.
func (z ZipCode) Value() string {
	return z.value
}

// String implements fmt.Stringer.
func (z ZipCode) String() string {
	return z.value
}

// Address is a postal address. Every field except the complement is required
// and stored trimmed. Address is immutable; Anonymize returns a transformed
// copy.
type Address struct { //nolint:recvcheck // pointer receivers on private setters for construction
	street       string
	complement   string
	neighborhood string
	city         string
	state        string
	zipCode      ZipCode
	guard        guard.ConstructorGuard
}

// NewAddress creates an Address. All fields are trimmed; street, neighborhood,
// city and state must be non-blank after trimming, the complement is optional
// and the zip code must be a constructed ZipCode.
func NewAddress(street, complement, neighborhood, city, state string, zipCode ZipCode) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setComplement(complement),
		address.setNeighborhood(neighborhood),
		address.setCity(city),
		address.setState(state),
		address.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// Complement returns the optional complement line, empty when not provided.
func (a Address) Complement() string {
	return a.complement
}

// Neighborhood returns the neighborhood.
func (a Address) Neighborhood() string {
	return a.neighborhood
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state.
func (a Address) State() string {
	return a.state
}

// ZipCode returns the postal code.
func (a Address) ZipCode() ZipCode {
	return a.zipCode
}

// IsEqual reports whether both addresses carry the same field values.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

// Anonymize returns a copy of the address with the street and complement
// replaced by the literal "anonymous". Neighborhood, city, state and zip code
// are preserved. Used when archiving customer data.
func (a Address) Anonymize() (Address, error) {
	if err := a.Validate(); err != nil {
		return Address{}, err
	}

	return NewAddress(
		anonymousValue,
		anonymousValue,
		a.neighborhood,
		a.city,
		a.state,
		a.zipCode,
	)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = street
	return nil
}

func (a *Address) setComplement(complement string) error {
	a.complement = strings.TrimSpace(complement)
	return nil
}

func (a *Address) setNeighborhood(neighborhood string) error {
	neighborhood = strings.TrimSpace(neighborhood)
	if neighborhood == "" {
		return errs.NewValueIsRequiredError("neighborhood")
	}

	a.neighborhood = neighborhood
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	state = strings.TrimSpace(state)
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}

	a.state = state
	return nil
}

func (a *Address) setZipCode(zipCode ZipCode) error {
	if err := zipCode.Validate(); err != nil {
		return err
	}

	a.zipCode = zipCode
	return nil
}
