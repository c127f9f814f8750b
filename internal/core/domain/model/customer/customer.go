package customer

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was
	// not created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

	// ErrCustomerArchived is returned when a mutation is attempted on an
	// archived customer. Archived customers are read-only.
	ErrCustomerArchived = errors.New("customer is archived and cannot be changed")
)

// Archival sentinels. Archiving keeps the record but strips anything that
// identifies the person behind it.
const (
	anonymizedFullName = "Anonymous"
	anonymizedPhone    = "000-000-0000"
	anonymizedDocument = "000-00-0000"
)

// Customer is the aggregate root for customer data: registration details,
// the promotion opt-in, the loyalty point balance and the archival state.
//
// Once archived a customer keeps its identity and loyalty balance but every
// identifying field is replaced by a fixed sentinel, and all mutators fail
// with ErrCustomerArchived.
type Customer struct {
	id                            kernel.UUID
	fullName                      kernel.FullName
	birthDate                     *BirthDate
	email                         kernel.Email
	phone                         kernel.Phone
	document                      kernel.Document
	promotionNotificationsAllowed bool
	archived                      bool
	registeredAt                  time.Time
	archivedAt                    time.Time
	loyaltyPoints                 LoyaltyPoints

	guard guard.ConstructorGuard
}

// NewCustomer registers a brand-new customer. The registration time is
// stamped now, the loyalty balance starts empty and the customer is not
// archived. The birth date is optional.
func NewCustomer(
	fullName kernel.FullName,
	birthDate *BirthDate,
	email kernel.Email,
	phone kernel.Phone,
	document kernel.Document,
	promotionNotificationsAllowed bool,
) (*Customer, error) {
	c := &Customer{
		id:                            kernel.NewUUID(),
		promotionNotificationsAllowed: promotionNotificationsAllowed,
		registeredAt:                  time.Now(),
		loyaltyPoints:                 ZeroLoyaltyPoints,
		guard:                         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setFullName(fullName),
		c.setBirthDate(birthDate),
		c.setEmail(email),
		c.setPhone(phone),
		c.setDocument(document),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistent storage, including
// archived ones.
func RestoreCustomer(
	id kernel.UUID,
	fullName kernel.FullName,
	birthDate *BirthDate,
	email kernel.Email,
	phone kernel.Phone,
	document kernel.Document,
	promotionNotificationsAllowed bool,
	archived bool,
	registeredAt time.Time,
	archivedAt time.Time,
	loyaltyPoints LoyaltyPoints,
) (*Customer, error) {
	c := &Customer{
		promotionNotificationsAllowed: promotionNotificationsAllowed,
		archived:                      archived,
		registeredAt:                  registeredAt,
		archivedAt:                    archivedAt,
		guard:                         guard.NewConstructorGuard(),
	}

	var registeredErr error
	if registeredAt.IsZero() {
		registeredErr = errors.New("registeredAt is required")
	}

	if err := errors.Join(
		c.setID(id),
		c.setFullName(fullName),
		c.setBirthDate(birthDate),
		c.setEmail(email),
		c.setPhone(phone),
		c.setDocument(document),
		c.setLoyaltyPoints(loyaltyPoints),
		registeredErr,
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FullName returns the customer's name.
func (c *Customer) FullName() kernel.FullName {
	return c.fullName
}

// BirthDate returns the date of birth, nil when never provided or archived.
func (c *Customer) BirthDate() *BirthDate {
	return c.birthDate
}

// Email returns the customer's e-mail address.
func (c *Customer) Email() kernel.Email {
	return c.email
}

// Phone returns the customer's contact phone.
func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

// Document returns the customer's identification document.
func (c *Customer) Document() kernel.Document {
	return c.document
}

// IsPromotionNotificationsAllowed reports the promotion opt-in.
func (c *Customer) IsPromotionNotificationsAllowed() bool {
	return c.promotionNotificationsAllowed
}

// IsArchived reports whether the customer has been archived.
func (c *Customer) IsArchived() bool {
	return c.archived
}

// RegisteredAt returns when the customer registered.
func (c *Customer) RegisteredAt() time.Time {
	return c.registeredAt
}

// ArchivedAt returns when the customer was archived, zero while active.
func (c *Customer) ArchivedAt() time.Time {
	return c.archivedAt
}

// LoyaltyPoints returns the current loyalty balance.
func (c *Customer) LoyaltyPoints() LoyaltyPoints {
	return c.loyaltyPoints
}

// AddLoyaltyPoints accrues points onto the customer's balance.
func (c *Customer) AddLoyaltyPoints(points LoyaltyPoints) error {
	if err := c.verifyChangeable(); err != nil {
		return err
	}

	balance, err := c.loyaltyPoints.Add(points)
	if err != nil {
		return err
	}

	c.loyaltyPoints = balance
	return nil
}

// ChangeName replaces the customer's name.
func (c *Customer) ChangeName(fullName kernel.FullName) error {
	if err := c.verifyChangeable(); err != nil {
		return err
	}

	return c.setFullName(fullName)
}

// ChangeEmail replaces the customer's e-mail address.
func (c *Customer) ChangeEmail(email kernel.Email) error {
	if err := c.verifyChangeable(); err != nil {
		return err
	}

	return c.setEmail(email)
}

// ChangePhone replaces the customer's contact phone.
func (c *Customer) ChangePhone(phone kernel.Phone) error {
	if err := c.verifyChangeable(); err != nil {
		return err
	}

	return c.setPhone(phone)
}

// EnablePromotionNotifications opts the customer into promotions.
func (c *Customer) EnablePromotionNotifications() error {
	if err := c.verifyChangeable(); err != nil {
		return err
	}

	c.promotionNotificationsAllowed = true
	return nil
}

// DisablePromotionNotifications opts the customer out of promotions.
func (c *Customer) DisablePromotionNotifications() error {
	if err := c.verifyChangeable(); err != nil {
		return err
	}

	c.promotionNotificationsAllowed = false
	return nil
}

// Archive flags the customer as archived, stamps archivedAt and replaces
// every identifying field with a fixed sentinel. The identity and loyalty
// balance survive. Archiving twice fails with ErrCustomerArchived.
func (c *Customer) Archive() error {
	if err := c.verifyChangeable(); err != nil {
		return err
	}

	fullName, err := kernel.NewFullName(anonymizedFullName)
	if err != nil {
		return err
	}
	phone, err := kernel.NewPhone(anonymizedPhone)
	if err != nil {
		return err
	}
	document, err := kernel.NewDocument(anonymizedDocument)
	if err != nil {
		return err
	}
	// the sentinel address stays unique per customer
	email, err := kernel.NewEmail(fmt.Sprintf("%s@anonymous.com", c.id))
	if err != nil {
		return err
	}

	c.fullName = fullName
	c.phone = phone
	c.document = document
	c.email = email
	c.birthDate = nil
	c.promotionNotificationsAllowed = false
	c.archived = true
	c.archivedAt = time.Now()
	return nil
}

func (c *Customer) verifyChangeable() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.archived {
		return ErrCustomerArchived
	}

	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Customer) setFullName(fullName kernel.FullName) error {
	if err := fullName.Validate(); err != nil {
		return err
	}

	c.fullName = fullName
	return nil
}

func (c *Customer) setBirthDate(birthDate *BirthDate) error {
	if birthDate == nil {
		return nil
	}

	if err := birthDate.Validate(); err != nil {
		return err
	}

	c.birthDate = birthDate
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *Customer) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}

func (c *Customer) setDocument(document kernel.Document) error {
	if err := document.Validate(); err != nil {
		return err
	}

	c.document = document
	return nil
}

func (c *Customer) setLoyaltyPoints(loyaltyPoints LoyaltyPoints) error {
	if err := loyaltyPoints.Validate(); err != nil {
		return err
	}

	c.loyaltyPoints = loyaltyPoints
	return nil
}
