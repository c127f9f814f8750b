package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBilling(t *testing.T) {
	t.Run("should create billing from constructed values", func(t *testing.T) {
		billing := makeBilling(t)

		require.NoError(t, billing.Validate())
		assert.Equal(t, "John Doe", billing.FullName().Value())
		assert.Equal(t, "john.doe@email.com", billing.Email().Value())
		assert.Equal(t, "Bourbon Street", billing.Address().Street())
	})

	t.Run("should reject unconstructed parts", func(t *testing.T) {
		var email kernel.Email
		fullName, _ := kernel.NewFullName("John Doe")
		document, _ := kernel.NewDocument("255-08-0578")
		phone, _ := kernel.NewPhone("478-256-2504")

		_, err := order.NewBilling(fullName, document, phone, email, makeAddress(t))

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var billing order.Billing

		assert.Equal(t, order.ErrBillingIsNotConstructed, billing.Validate())
	})
}

func TestNewShipping(t *testing.T) {
	t.Run("should create shipping from constructed values", func(t *testing.T) {
		expectedDate := time.Now().AddDate(0, 0, 3)

		shipping := makeShipping(t, "12.34", expectedDate)

		require.NoError(t, shipping.Validate())
		assert.Equal(t, "12.34", shipping.Cost().String())
		assert.Equal(t, expectedDate, shipping.ExpectedDate())
		assert.Equal(t, "John Doe", shipping.Recipient().FullName().Value())
	})

	t.Run("should reject zero expected date", func(t *testing.T) {
		cost, err := kernel.NewMoneyFromString("12.34")
		require.NoError(t, err)

		_, err = order.NewShipping(cost, time.Time{}, makeRecipient(t), makeAddress(t))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expectedDeliveryDate")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var shipping order.Shipping

		assert.Equal(t, order.ErrShippingIsNotConstructed, shipping.Validate())
	})
}

func TestNewRecipient(t *testing.T) {
	t.Run("should reject unconstructed parts", func(t *testing.T) {
		var phone kernel.Phone
		fullName, _ := kernel.NewFullName("John Doe")
		document, _ := kernel.NewDocument("255-08-0578")

		_, err := order.NewRecipient(fullName, document, phone)

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var recipient order.Recipient

		assert.Equal(t, order.ErrRecipientIsNotConstructed, recipient.Validate())
	})
}
