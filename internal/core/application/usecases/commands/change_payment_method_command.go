package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrChangePaymentMethodCommandIsNotConstructed = errors.New(
	"ChangePaymentMethodCommand must be created via NewChangePaymentMethodCommand constructor",
)

// ChangePaymentMethodCommand represents a request to choose how an order is
// paid.
type ChangePaymentMethodCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	method  order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewChangePaymentMethodCommand creates a command to choose a payment method.
func NewChangePaymentMethodCommand(orderID kernel.UUID, method order.PaymentMethod) (ChangePaymentMethodCommand, error) {
	cmd := ChangePaymentMethodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
	); err != nil {
		return ChangePaymentMethodCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrChangePaymentMethodCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c ChangePaymentMethodCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the chosen payment method.
func (c ChangePaymentMethodCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *ChangePaymentMethodCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangePaymentMethodCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
