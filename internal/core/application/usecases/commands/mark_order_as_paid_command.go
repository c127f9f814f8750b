package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrMarkOrderAsPaidCommandIsNotConstructed = errors.New(
	"MarkOrderAsPaidCommand must be created via NewMarkOrderAsPaidCommand constructor",
)

// MarkOrderAsPaidCommand represents a payment confirmation for a placed
// order.
type MarkOrderAsPaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderAsPaidCommand creates a command to confirm payment.
func NewMarkOrderAsPaidCommand(orderID kernel.UUID) (MarkOrderAsPaidCommand, error) {
	cmd := MarkOrderAsPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderAsPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderAsPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderAsPaidCommandIsNotConstructed)
}

// OrderID returns the order whose payment is confirmed.
func (c MarkOrderAsPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderAsPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
