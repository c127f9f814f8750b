package order

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ItemNotFoundError is returned when an order operation references a line
// item the order does not contain.
type ItemNotFoundError struct {
	ItemID  kernel.UUID
	OrderID kernel.UUID
}

func NewItemNotFoundError(itemID, orderID kernel.UUID) *ItemNotFoundError {
	return &ItemNotFoundError{ItemID: itemID, OrderID: orderID}
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("order item %s does not belong to order %s", e.ItemID, e.OrderID)
}

func (e *ItemNotFoundError) Unwrap() error {
	return errs.ErrObjectNotFound
}

// StatusCannotBeChangedError is returned when a lifecycle operation requests
// a transition the state machine does not allow.
type StatusCannotBeChangedError struct {
	OrderID kernel.UUID
	From    Status
	To      Status
}

func NewStatusCannotBeChangedError(orderID kernel.UUID, from, to Status) *StatusCannotBeChangedError {
	return &StatusCannotBeChangedError{OrderID: orderID, From: from, To: to}
}

func (e *StatusCannotBeChangedError) Error() string {
	return fmt.Sprintf("cannot change order %s status from %s to %s", e.OrderID, e.From, e.To)
}

// CannotBePlacedError is returned when a draft order is placed without
// everything placement requires. MissingDependency names the absent piece:
// "shipping", "billing", "paymentMethod" or "items".
type CannotBePlacedError struct {
	OrderID           kernel.UUID
	MissingDependency string
}

func NewCannotBePlacedError(orderID kernel.UUID, missingDependency string) *CannotBePlacedError {
	return &CannotBePlacedError{OrderID: orderID, MissingDependency: missingDependency}
}

func (e *CannotBePlacedError) Error() string {
	return fmt.Sprintf("order %s cannot be placed: %s is missing", e.OrderID, e.MissingDependency)
}

// InvalidDeliveryDateError is returned when shipping carries an expected
// delivery date in the past.
type InvalidDeliveryDateError struct {
	OrderID      kernel.UUID
	ExpectedDate time.Time
}

func NewInvalidDeliveryDateError(orderID kernel.UUID, expectedDate time.Time) *InvalidDeliveryDateError {
	return &InvalidDeliveryDateError{OrderID: orderID, ExpectedDate: expectedDate}
}

func (e *InvalidDeliveryDateError) Error() string {
	return fmt.Sprintf(
		"expected delivery date %s for order %s cannot be in the past",
		e.ExpectedDate.Format("2006-01-02"), e.OrderID,
	)
}
