package commands

import (
	"context"
)

// ChangeOrderBillingCommandHandler replaces an order's invoicing details.
type ChangeOrderBillingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderBillingCommandHandler creates a handler for billing changes.
func NewChangeOrderBillingCommandHandler(uowFactory OrderUoWFactory) ChangeOrderBillingCommandHandler {
	return ChangeOrderBillingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, replaces its billing details and persists it.
func (h *ChangeOrderBillingCommandHandler) Handle(ctx context.Context, cmd ChangeOrderBillingCommand) error {
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

	if err = aggregate.ChangeBilling(cmd.Billing()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
