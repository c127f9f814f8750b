package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrChangeOrderShippingCommandIsNotConstructed = errors.New(
	"ChangeOrderShippingCommand must be created via NewChangeOrderShippingCommand constructor",
)

// ChangeOrderShippingCommand represents a request to replace an order's
// delivery details. The delivery date rule lives in the aggregate, which sees
// the change at apply time.
type ChangeOrderShippingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	shipping order.Shipping

	guard guard.ConstructorGuard
}

// NewChangeOrderShippingCommand creates a command to replace shipping details.
func NewChangeOrderShippingCommand(orderID kernel.UUID, shipping order.Shipping) (ChangeOrderShippingCommand, error) {
	cmd := ChangeOrderShippingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShipping(shipping),
	); err != nil {
		return ChangeOrderShippingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderShippingCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderShippingCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c ChangeOrderShippingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Shipping returns the replacement delivery details.
func (c ChangeOrderShippingCommand) Shipping() order.Shipping {
	return c.shipping
}

func (c *ChangeOrderShippingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderShippingCommand) setShipping(shipping order.Shipping) error {
	if err := shipping.Validate(); err != nil {
		return err
	}

	c.shipping = shipping
	return nil
}
