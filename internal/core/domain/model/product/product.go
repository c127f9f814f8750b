// Package product holds the catalog snapshot the ordering domain consumes.
// A Product is a value object: the ordering side never mutates catalog data,
// it only reads the identity, display name, current price and stock flag at
// the moment an order line is created.
package product

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when validating a zero-value Product.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError("Product must be created via NewProduct")

// OutOfStockError is returned when an operation requires a product that the
// catalog currently reports as unavailable.
type OutOfStockError struct {
	ProductID kernel.UUID
}

func NewOutOfStockError(productID kernel.UUID) *OutOfStockError {
	return &OutOfStockError{ProductID: productID}
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %s is out of stock", e.ProductID)
}

// Product is a read-only snapshot of a catalog entry.
type Product struct { //nolint:recvcheck // pointer receivers on private setters for construction
	id      kernel.UUID
	name    string
	price   kernel.Money
	inStock bool

	guard guard.ConstructorGuard
}

// NewProduct creates a Product snapshot. The name is trimmed and must be
// non-blank, the id and price must be constructed values.
func NewProduct(id kernel.UUID, name string, price kernel.Money, inStock bool) (Product, error) {
	p := Product{
		inStock: inStock,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate returns ErrProductIsNotConstructed for the zero value.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identity.
func (p Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p Product) Name() string {
	return p.name
}

// Price returns the current unit price.
func (p Product) Price() kernel.Money {
	return p.price
}

// IsInStock reports whether the catalog had the product available when this
// snapshot was taken.
func (p Product) IsInStock() bool {
	return p.inStock
}

// CheckInStock fails with an OutOfStockError when the product is unavailable.
func (p Product) CheckInStock() error {
	if err := p.Validate(); err != nil {
		return err
	}

	if !p.inStock {
		return NewOutOfStockError(p.id)
	}

	return nil
}

// IsEqual reports whether both snapshots refer to the same product identity.
func (p Product) IsEqual(other Product) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.id.IsEqual(other.id), nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	p.price = price
	return nil
}
