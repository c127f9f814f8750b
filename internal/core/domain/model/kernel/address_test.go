package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustZipCode(t *testing.T, value string) kernel.ZipCode {
	t.Helper()
	zip, err := kernel.NewZipCode(value)
	require.NoError(t, err)
	return zip
}

func mustAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(
		"Bourbon Street", "apt 1134", "North Ville", "York", "South California",
		mustZipCode(t, "70283"),
	)
	require.NoError(t, err)
	return address
}

func TestNewZipCode(t *testing.T) {
	t.Run("should create zip code with exactly five characters", func(t *testing.T) {
		zip, err := kernel.NewZipCode("70283")

		require.NoError(t, err)
		require.NoError(t, zip.Validate())
		assert.Equal(t, "70283", zip.Value())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		zip, err := kernel.NewZipCode("  70283  ")

		require.NoError(t, err)
		assert.Equal(t, "70283", zip.Value())
	})

	t.Run("should reject blank input", func(t *testing.T) {
		_, err := kernel.NewZipCode("   ")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsRequiredError{}, err)
	})

	t.Run("should reject wrong lengths", func(t *testing.T) {
		for _, value := range []string{"1234", "123456", "1"} {
			_, err := kernel.NewZipCode(value)

			require.Error(t, err, "value %q", value)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "exactly 5 characters")
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var zip kernel.ZipCode

		err := zip.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrZipCodeIsNotConstructed, err)
	})
}

func TestNewAddress(t *testing.T) {
	zip := mustZipCode(t, "70283")

	t.Run("should create address with all fields", func(t *testing.T) {
		address, err := kernel.NewAddress(
			"Bourbon Street", "apt 1134", "North Ville", "York", "South California", zip,
		)

		require.NoError(t, err)
		require.NoError(t, address.Validate())
		assert.Equal(t, "Bourbon Street", address.Street())
		assert.Equal(t, "apt 1134", address.Complement())
		assert.Equal(t, "North Ville", address.Neighborhood())
		assert.Equal(t, "York", address.City())
		assert.Equal(t, "South California", address.State())
		assert.Equal(t, "70283", address.ZipCode().Value())
	})

	t.Run("should accept missing complement", func(t *testing.T) {
		address, err := kernel.NewAddress("Bourbon Street", "", "North Ville", "York", "SC", zip)

		require.NoError(t, err)
		assert.Empty(t, address.Complement())
	})

	t.Run("should trim every field", func(t *testing.T) {
		address, err := kernel.NewAddress(
			"  Bourbon Street  ", "  apt 1134  ", "  North Ville  ", "  York  ", "  SC  ", zip,
		)

		require.NoError(t, err)
		assert.Equal(t, "Bourbon Street", address.Street())
		assert.Equal(t, "apt 1134", address.Complement())
	})

	t.Run("should reject blank required fields", func(t *testing.T) {
		testCases := []struct {
			name         string
			street       string
			neighborhood string
			city         string
			state        string
			expected     string
		}{
			{"blank street", "   ", "North Ville", "York", "SC", "street"},
			{"blank neighborhood", "Bourbon Street", "", "York", "SC", "neighborhood"},
			{"blank city", "Bourbon Street", "North Ville", "  ", "SC", "city"},
			{"blank state", "Bourbon Street", "North Ville", "York", "", "state"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewAddress(tc.street, "", tc.neighborhood, tc.city, tc.state, zip)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.Contains(t, err.Error(), tc.expected)
			})
		}
	})

	t.Run("should reject unconstructed zip code", func(t *testing.T) {
		var invalidZip kernel.ZipCode

		_, err := kernel.NewAddress("Bourbon Street", "", "North Ville", "York", "SC", invalidZip)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrZipCodeIsNotConstructed, err)
	})

	t.Run("should collect multiple field errors", func(t *testing.T) {
		var invalidZip kernel.ZipCode

		_, err := kernel.NewAddress("", "", "", "York", "SC", invalidZip)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "neighborhood")
		assert.Contains(t, err.Error(), "ZipCode must be created")
	})
}

func TestAddress_Anonymize(t *testing.T) {
	t.Run("should blank street and complement and keep the rest", func(t *testing.T) {
		address := mustAddress(t)

		anonymized, err := address.Anonymize()

		require.NoError(t, err)
		assert.Equal(t, "anonymous", anonymized.Street())
		assert.Equal(t, "anonymous", anonymized.Complement())
		assert.Equal(t, address.Neighborhood(), anonymized.Neighborhood())
		assert.Equal(t, address.City(), anonymized.City())
		assert.Equal(t, address.State(), anonymized.State())
		assert.Equal(t, address.ZipCode(), anonymized.ZipCode())
	})

	t.Run("should not mutate the original address", func(t *testing.T) {
		address := mustAddress(t)

		_, err := address.Anonymize()

		require.NoError(t, err)
		assert.Equal(t, "Bourbon Street", address.Street())
		assert.Equal(t, "apt 1134", address.Complement())
	})

	t.Run("should fail on unconstructed address", func(t *testing.T) {
		var address kernel.Address

		_, err := address.Anonymize()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	t.Run("should compare by all field values", func(t *testing.T) {
		a := mustAddress(t)
		b := mustAddress(t)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should detect differing fields", func(t *testing.T) {
		a := mustAddress(t)
		b, err := kernel.NewAddress(
			"Other Street", "apt 1134", "North Ville", "York", "South California",
			mustZipCode(t, "70283"),
		)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})
}
