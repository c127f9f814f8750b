package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// CreateDraftOrderCommandHandler handles draft order creation. The aggregate
// generates the order identity, which the handler returns to the caller.
type CreateDraftOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateDraftOrderCommandHandler creates a handler for draft order creation.
func NewCreateDraftOrderCommandHandler(uowFactory OrderUoWFactory) CreateDraftOrderCommandHandler {
	return CreateDraftOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens a new draft order and persists it, returning the new order's
// identifier. Uses a transaction so the draft is fully persisted or rolled
// back on error.
func (h *CreateDraftOrderCommandHandler) Handle(ctx context.Context, cmd CreateDraftOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	draft, err := order.NewDraftOrder(cmd.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, draft); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return draft.ID(), nil
}
