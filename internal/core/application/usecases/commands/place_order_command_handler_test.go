package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeBilling(t *testing.T) order.Billing {
	t.Helper()
	fullName, err := kernel.NewFullName("John Doe")
	require.NoError(t, err)
	document, err := kernel.NewDocument("255-08-0578")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("478-256-2504")
	require.NoError(t, err)
	email, err := kernel.NewEmail("john.doe@email.com")
	require.NoError(t, err)

	billing, err := order.NewBilling(fullName, document, phone, email, makeAddress(t))
	require.NoError(t, err)
	return billing
}

func makeAddress(t *testing.T) kernel.Address {
	t.Helper()
	zip, err := kernel.NewZipCode("70283")
	require.NoError(t, err)
	address, err := kernel.NewAddress("Bourbon Street", "", "North Ville", "York", "SC", zip)
	require.NoError(t, err)
	return address
}

func makeShipping(t *testing.T) order.Shipping {
	t.Helper()
	cost, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)
	fullName, err := kernel.NewFullName("John Doe")
	require.NoError(t, err)
	document, err := kernel.NewDocument("255-08-0578")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("478-256-2504")
	require.NoError(t, err)
	recipient, err := order.NewRecipient(fullName, document, phone)
	require.NoError(t, err)

	shipping, err := order.NewShipping(cost, time.Now().AddDate(0, 0, 3), recipient, makeAddress(t))
	require.NoError(t, err)
	return shipping
}

func makePlaceableOrder(t *testing.T) *order.Order {
	t.Helper()
	draft := makeDraftOrder(t)
	q, err := kernel.NewQuantity(1)
	require.NoError(t, err)
	require.NoError(t, draft.AddItem(makeCatalogProduct(t, true), q))
	require.NoError(t, draft.ChangeBilling(makeBilling(t)))
	require.NoError(t, draft.ChangeShipping(makeShipping(t)))
	require.NoError(t, draft.ChangePaymentMethod(order.PaymentMethodCreditCard))
	return draft
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	draft := makePlaceableOrder(t)
	cmd, _ := commands.NewPlaceOrderCommand(draft.ID())

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

	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusPlaced, draft.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_IncompleteDraft(t *testing.T) {
	ctx := context.Background()
	draft := makeDraftOrder(t) // no items, billing, shipping or payment
	cmd, _ := commands.NewPlaceOrderCommand(draft.ID())

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

	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	var cannotPlace *order.CannotBePlacedError
	require.ErrorAs(t, err, &cannotPlace)
	require.Equal(t, order.StatusDraft, draft.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
