package kernel_test

import (
	"testing"
	"time"

	"kakanin/internal/core/domain/model/kernel"
	"kakanin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickupDate(t *testing.T) {
	t.Run("should create valid date", func(t *testing.T) {
		d, err := kernel.NewPickupDate(2024, 3, 7)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, 3, d.Month())
		assert.Equal(t, 7, d.Day())
		assert.Equal(t, "2024-03-07", d.String())
	})

	t.Run("should accept leap day", func(t *testing.T) {
		_, err := kernel.NewPickupDate(2024, 2, 29)
		require.NoError(t, err)
	})

	testCases := []struct {
		name             string
		year, month, day int
		expectedFragment string
	}{
		{"year zero", 0, 1, 1, "is year"},
		{"five digit year", 10000, 1, 1, "is year"},
		{"month zero", 2024, 0, 1, "is month"},
		{"month thirteen", 2024, 13, 1, "is month"},
		{"day zero", 2024, 1, 0, "is day"},
		{"february thirtieth", 2024, 2, 30, "max value is 29"},
		{"february twenty ninth in common year", 2023, 2, 29, "max value is 28"},
		{"april thirty first", 2024, 4, 31, "max value is 30"},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := kernel.NewPickupDate(tc.year, tc.month, tc.day)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), tc.expectedFragment)
		})
	}
}

func TestParsePickupDate(t *testing.T) {
	t.Run("should parse form value", func(t *testing.T) {
		d, err := kernel.ParsePickupDate(" 1999-12-31 ")

		require.NoError(t, err)
		assert.Equal(t, 19991231, d.Key())
	})

	t.Run("should require a value", func(t *testing.T) {
		_, err := kernel.ParsePickupDate("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject other layouts", func(t *testing.T) {
		_, err := kernel.ParsePickupDate("31/12/1999")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject impossible date", func(t *testing.T) {
		_, err := kernel.ParsePickupDate("2023-02-30")

		require.Error(t, err)
	})
}

func TestPickupDateFromTime(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	d, err := kernel.PickupDateFromTime(time.Date(2024, 5, 1, 23, 30, 0, 0, manila))

	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", d.String())
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestPickupDate_Key(t *testing.T) {
	earlier, _ := kernel.NewPickupDate(1999, 12, 31)
	later, _ := kernel.NewPickupDate(2000, 1, 1)

	assert.Equal(t, 19991231, earlier.Key())
	assert.Equal(t, 20000101, later.Key())
	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestPickupDate_IsEqual(t *testing.T) {
	a, _ := kernel.NewPickupDate(2024, 5, 1)
	b, _ := kernel.ParsePickupDate("2024-05-01")
	c, _ := kernel.NewPickupDate(2024, 5, 2)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPickupDate_Validate(t *testing.T) {
	var zero kernel.PickupDate

	require.ErrorIs(t, zero.Validate(), kernel.ErrPickupDateIsNotConstructed)
}
