package commands

import (
	"context"
)

// ChangePaymentMethodCommandHandler records the customer's payment choice on
// an order.
type ChangePaymentMethodCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangePaymentMethodCommandHandler creates a handler for payment method changes.
func NewChangePaymentMethodCommandHandler(uowFactory OrderUoWFactory) ChangePaymentMethodCommandHandler {
	return ChangePaymentMethodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, records the payment method and persists it.
func (h *ChangePaymentMethodCommandHandler) Handle(ctx context.Context, cmd ChangePaymentMethodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangePaymentMethod(cmd.Method()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
