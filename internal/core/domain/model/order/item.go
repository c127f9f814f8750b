package order

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrItemIsNotConstructed indicates that the Item was not created through the
// aggregate (Order.AddItem) or the RestoreItem function.
var ErrItemIsNotConstructed = errors.New("Item must be created via Order.AddItem or RestoreItem")

// Item is a single line of an order. It snapshots the product's name and
// price at the moment it is added, so later catalog changes never affect an
// existing order.
//
// An Item is an owned child entity of Order: brand-new items come to life only
// inside Order.AddItem, and quantity changes only through
// Order.ChangeItemQuantity. RestoreItem exists for rehydration from
// persistence. Equality is identity based.
type Item struct {
	// id uniquely identifies the line within the whole system
	id kernel.UUID

	// orderID ties the line to its owning order
	orderID kernel.UUID

	// productID references the catalog entry the line was created from
	productID kernel.UUID

	// productName is the display name snapshotted at creation time
	productName string

	// price is the unit price snapshotted at creation time
	price kernel.Money

	// quantity is the number of units ordered
	quantity kernel.Quantity

	// totalAmount is always price multiplied by quantity
	totalAmount kernel.Money

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// newItem creates a brand-new line for the given order from a catalog
// snapshot. Only the Order aggregate calls this; the stock check happens in
// Order.AddItem before the line exists.
func newItem(orderID kernel.UUID, p product.Product, quantity kernel.Quantity) (*Item, error) {
	if err := errors.Join(orderID.Validate(), p.Validate(), quantity.Validate()); err != nil {
		return nil, err
	}

	totalAmount, err := p.Price().Multiply(quantity)
	if err != nil {
		return nil, err
	}

	return &Item{
		id:          kernel.NewUUID(),
		orderID:     orderID,
		productID:   p.ID(),
		productName: p.Name(),
		price:       p.Price(),
		quantity:    quantity,
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs a persisted line. The total amount is recomputed
// from the persisted price and quantity rather than trusted from storage.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	productName string,
	price kernel.Money,
	quantity kernel.Quantity,
) (*Item, error) {
	productName = strings.TrimSpace(productName)

	var nameErr error
	if productName == "" {
		nameErr = errs.NewValueIsRequiredError("productName")
	}

	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		productID.Validate(),
		nameErr,
		price.Validate(),
		quantity.Validate(),
	); err != nil {
		return nil, err
	}

	totalAmount, err := price.Multiply(quantity)
	if err != nil {
		return nil, err
	}

	return &Item{
		id:          id,
		orderID:     orderID,
		productID:   productID,
		productName: productName,
		price:       price,
		quantity:    quantity,
		totalAmount: totalAmount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was created through the aggregate or RestoreItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the owning order's identifier.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the catalog entry the line was created from.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name snapshotted at creation time.
func (i *Item) ProductName() string {
	return i.productName
}

// Price returns the unit price snapshotted at creation time.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() kernel.Quantity {
	return i.quantity
}

// TotalAmount returns price multiplied by quantity.
func (i *Item) TotalAmount() kernel.Money {
	return i.totalAmount
}

// changeQuantity replaces the quantity and recomputes the line total.
// Only Order.ChangeItemQuantity calls this, so order totals stay consistent.
func (i *Item) changeQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	totalAmount, err := i.price.Multiply(quantity)
	if err != nil {
		return err
	}

	i.quantity = quantity
	i.totalAmount = totalAmount
	return nil
}
