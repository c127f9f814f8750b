package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrChangeOrderBillingCommandIsNotConstructed = errors.New(
	"ChangeOrderBillingCommand must be created via NewChangeOrderBillingCommand constructor",
)

// ChangeOrderBillingCommand represents a request to replace an order's
// invoicing details. The billing value arrives already constructed, so the
// command only checks it is a real one.
type ChangeOrderBillingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	billing order.Billing

	guard guard.ConstructorGuard
}

// NewChangeOrderBillingCommand creates a command to replace billing details.
func NewChangeOrderBillingCommand(orderID kernel.UUID, billing order.Billing) (ChangeOrderBillingCommand, error) {
	cmd := ChangeOrderBillingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBilling(billing),
	); err != nil {
		return ChangeOrderBillingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderBillingCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderBillingCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c ChangeOrderBillingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Billing returns the replacement invoicing details.
func (c ChangeOrderBillingCommand) Billing() order.Billing {
	return c.billing
}

func (c *ChangeOrderBillingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderBillingCommand) setBilling(billing order.Billing) error {
	if err := billing.Validate(); err != nil {
		return err
	}

	c.billing = billing
	return nil
}
