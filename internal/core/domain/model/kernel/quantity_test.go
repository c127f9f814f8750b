package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("should create quantity from non-negative value", func(t *testing.T) {
		q, err := kernel.NewQuantity(3)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, 3, q.Value())
		assert.Equal(t, "3", q.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		q, err := kernel.NewQuantity(0)

		require.NoError(t, err)
		assert.Equal(t, 0, q.Value())
	})

	t.Run("should reject negative values", func(t *testing.T) {
		_, err := kernel.NewQuantity(-1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "-1 is negative")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var q kernel.Quantity

		err := q.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrQuantityIsNotConstructed, err)
	})

	t.Run("ZeroQuantity should be a valid canonical zero", func(t *testing.T) {
		require.NoError(t, kernel.ZeroQuantity.Validate())
		assert.Equal(t, 0, kernel.ZeroQuantity.Value())
	})
}

func TestQuantity_Add(t *testing.T) {
	t.Run("should sum both quantities", func(t *testing.T) {
		a, _ := kernel.NewQuantity(2)
		b, _ := kernel.NewQuantity(3)

		result, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, 5, result.Value())
		assert.Equal(t, 2, a.Value()) // receiver untouched
	})

	t.Run("should fail with unconstructed argument", func(t *testing.T) {
		a, _ := kernel.NewQuantity(2)
		var b kernel.Quantity

		_, err := a.Add(b)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestQuantity_Cmp(t *testing.T) {
	t.Run("should order quantities", func(t *testing.T) {
		two, _ := kernel.NewQuantity(2)
		three, _ := kernel.NewQuantity(3)

		cmp, err := two.Cmp(three)
		require.NoError(t, err)
		assert.Equal(t, -1, cmp)

		cmp, err = three.Cmp(two)
		require.NoError(t, err)
		assert.Equal(t, 1, cmp)

		otherTwo, _ := kernel.NewQuantity(2)
		cmp, err = two.Cmp(otherTwo)
		require.NoError(t, err)
		assert.Equal(t, 0, cmp)
	})
}
