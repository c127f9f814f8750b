package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	draft, err := order.NewDraftOrder(kernel.NewUUID())
	require.NoError(t, err)
	return draft
}

func makeCatalogProduct(t *testing.T, inStock bool) product.Product {
	t.Helper()
	price, err := kernel.NewMoneyFromString("59.90")
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "Mouse", price, inStock)
	require.NoError(t, err)
	return p
}

func TestAddOrderItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	draft := makeDraftOrder(t)
	p := makeCatalogProduct(t, true)
	cmd, _ := commands.NewAddOrderItemCommand(draft.ID(), p.ID(), 2)

	catalog := new(MockProductCatalog)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, draft.ID()).Return(draft, nil).Once(),
		repo.On("Update", mock.Anything, draft).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory, catalog)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, draft.Items(), 1)
	require.Equal(t, 2, draft.TotalItems().Value())
	catalog.AssertExpectations(t)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_OutOfStock(t *testing.T) {
	ctx := context.Background()
	draft := makeDraftOrder(t)
	p := makeCatalogProduct(t, false)
	cmd, _ := commands.NewAddOrderItemCommand(draft.ID(), p.ID(), 2)

	catalog := new(MockProductCatalog)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, draft.ID()).Return(draft, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory, catalog)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	var outOfStock *product.OutOfStockError
	require.ErrorAs(t, err, &outOfStock)
	require.Empty(t, draft.Items())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_CatalogError(t *testing.T) {
	ctx := context.Background()
	productID := kernel.NewUUID()
	cmd, _ := commands.NewAddOrderItemCommand(kernel.NewUUID(), productID, 2)

	catalog := new(MockProductCatalog)
	catalog.On("Get", ctx, productID).Return(product.Product{}, errors.New("catalog unavailable")).Once()

	factory := new(MockOrderUoWFactory)

	h := commands.NewAddOrderItemCommandHandler(factory, catalog)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestAddOrderItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	p := makeCatalogProduct(t, true)
	cmd, _ := commands.NewAddOrderItemCommand(orderID, p.ID(), 2)

	catalog := new(MockProductCatalog)
	catalog.On("Get", ctx, p.ID()).Return(p, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(nil, errors.New("order not found")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddOrderItemCommandHandler(factory, catalog)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestNewAddOrderItemCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), -1)
	require.Error(t, err)
}
