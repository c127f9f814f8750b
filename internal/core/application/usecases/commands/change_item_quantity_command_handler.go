package commands

import (
	"context"
)

// ChangeItemQuantityCommandHandler changes the quantity of an order line and
// persists the recalculated aggregate.
type ChangeItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeItemQuantityCommandHandler creates a handler for quantity changes.
func NewChangeItemQuantityCommandHandler(uowFactory OrderUoWFactory) ChangeItemQuantityCommandHandler {
	return ChangeItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the quantity change and persists it.
func (h *ChangeItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeItemQuantityCommand) error {
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

	if err = aggregate.ChangeItemQuantity(cmd.ItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
