package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func mustQuantity(t *testing.T, value int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return q
}

func makeProduct(t *testing.T, name, price string, inStock bool) product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, mustMoney(t, price), inStock)
	require.NoError(t, err)
	return p
}

func makeAddress(t *testing.T) kernel.Address {
	t.Helper()
	zip, err := kernel.NewZipCode("70283")
	require.NoError(t, err)
	address, err := kernel.NewAddress(
		"Bourbon Street", "apt 1134", "North Ville", "York", "South California", zip,
	)
	require.NoError(t, err)
	return address
}

func makeRecipient(t *testing.T) order.Recipient {
	t.Helper()
	fullName, err := kernel.NewFullName("John Doe")
	require.NoError(t, err)
	document, err := kernel.NewDocument("255-08-0578")
	require.NoError(t, err)
	phone, err := kernel.NewPhone("478-256-2504")
	require.NoError(t, err)

	recipient, err := order.NewRecipient(fullName, document, phone)
	require.NoError(t, err)
	return recipient
}

func makeShipping(t *testing.T, cost string, expectedDate time.Time) order.Shipping {
	t.Helper()
	shipping, err := order.NewShipping(mustMoney(t, cost), expectedDate, makeRecipient(t), makeAddress(t))
	require.NoError(t, err)
	return shipping
}

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

func makeDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	draft, err := order.NewDraftOrder(kernel.NewUUID())
	require.NoError(t, err)
	return draft
}

// makePlaceableOrder returns a draft carrying one item, billing, shipping and
// a payment method, ready for Place.
func makePlaceableOrder(t *testing.T) *order.Order {
	t.Helper()
	draft := makeDraftOrder(t)
	require.NoError(t, draft.AddItem(makeProduct(t, "Mouse", "59.90", true), mustQuantity(t, 1)))
	require.NoError(t, draft.ChangeBilling(makeBilling(t)))
	require.NoError(t, draft.ChangeShipping(makeShipping(t, "10.00", time.Now().AddDate(0, 0, 3))))
	require.NoError(t, draft.ChangePaymentMethod(order.PaymentMethodCreditCard))
	return draft
}

func makePlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	placed := makePlaceableOrder(t)
	require.NoError(t, placed.Place())
	return placed
}
