package commands

import (
	"context"
)

// MarkOrderAsPaidCommandHandler moves a placed order to the paid state.
type MarkOrderAsPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderAsPaidCommandHandler creates a handler for payment confirmation.
func NewMarkOrderAsPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderAsPaidCommandHandler {
	return MarkOrderAsPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, marks it as paid and persists the transition.
func (h *MarkOrderAsPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderAsPaidCommand) error {
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

	if err = aggregate.MarkAsPaid(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
