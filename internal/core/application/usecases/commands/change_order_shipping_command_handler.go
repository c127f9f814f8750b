package commands

import (
	"context"
)

// ChangeOrderShippingCommandHandler replaces an order's delivery details and
// persists the recalculated aggregate.
type ChangeOrderShippingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderShippingCommandHandler creates a handler for shipping changes.
func NewChangeOrderShippingCommandHandler(uowFactory OrderUoWFactory) ChangeOrderShippingCommandHandler {
	return ChangeOrderShippingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, replaces its shipping details and persists it.
func (h *ChangeOrderShippingCommandHandler) Handle(ctx context.Context, cmd ChangeOrderShippingCommand) error {
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

	if err = aggregate.ChangeShipping(cmd.Shipping()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
