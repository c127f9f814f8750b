package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrChangeItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeItemQuantityCommand must be created via NewChangeItemQuantityCommand constructor",
)

// ChangeItemQuantityCommand represents a request to change the quantity of an
// existing order line.
type ChangeItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	quantity kernel.Quantity

	guard guard.ConstructorGuard
}

// NewChangeItemQuantityCommand creates a command to change a line's quantity.
func NewChangeItemQuantityCommand(orderID, itemID kernel.UUID, quantity int) (ChangeItemQuantityCommand, error) {
	cmd := ChangeItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return ChangeItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemQuantityCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c ChangeItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the order line to change.
func (c ChangeItemQuantityCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the new number of units.
func (c ChangeItemQuantityCommand) Quantity() kernel.Quantity {
	return c.quantity
}

func (c *ChangeItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeItemQuantityCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeItemQuantityCommand) setQuantity(quantity int) error {
	q, err := kernel.NewQuantity(quantity)
	if err != nil {
		return err
	}

	c.quantity = q
	return nil
}
