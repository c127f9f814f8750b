package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFullName(t *testing.T) {
	t.Run("should create full name from trimmed input", func(t *testing.T) {
		name, err := kernel.NewFullName("  John Doe  ")

		require.NoError(t, err)
		require.NoError(t, name.Validate())
		assert.Equal(t, "John Doe", name.Value())
		assert.Equal(t, "John Doe", name.String())
	})

	t.Run("should reject blank input", func(t *testing.T) {
		_, err := kernel.NewFullName("   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "fullName")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var name kernel.FullName

		assert.Equal(t, kernel.ErrFullNameIsNotConstructed, name.Validate())
	})
}

func TestNewDocument(t *testing.T) {
	t.Run("should create document from trimmed input", func(t *testing.T) {
		document, err := kernel.NewDocument(" 255-08-0578 ")

		require.NoError(t, err)
		require.NoError(t, document.Validate())
		assert.Equal(t, "255-08-0578", document.Value())
	})

	t.Run("should reject blank input", func(t *testing.T) {
		_, err := kernel.NewDocument("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var document kernel.Document

		assert.Equal(t, kernel.ErrDocumentIsNotConstructed, document.Validate())
	})
}

func TestNewPhone(t *testing.T) {
	t.Run("should create phone from trimmed input", func(t *testing.T) {
		phone, err := kernel.NewPhone(" 478-256-2504 ")

		require.NoError(t, err)
		require.NoError(t, phone.Validate())
		assert.Equal(t, "478-256-2504", phone.Value())
	})

	t.Run("should reject blank input", func(t *testing.T) {
		_, err := kernel.NewPhone("  ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var phone kernel.Phone

		assert.Equal(t, kernel.ErrPhoneIsNotConstructed, phone.Validate())
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("should create email from valid address", func(t *testing.T) {
		email, err := kernel.NewEmail("  john.doe@email.com  ")

		require.NoError(t, err)
		require.NoError(t, email.Validate())
		assert.Equal(t, "john.doe@email.com", email.Value())
	})

	t.Run("should reject blank input", func(t *testing.T) {
		_, err := kernel.NewEmail("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, value := range []string{"invalid", "john@", "@email.com", "John Doe <john@email.com>"} {
			_, err := kernel.NewEmail(value)

			require.Error(t, err, "value %q", value)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var email kernel.Email

		assert.Equal(t, kernel.ErrEmailIsNotConstructed, email.Validate())
	})
}
