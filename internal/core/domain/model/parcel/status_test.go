package parcel_test

import (
	"testing"

	"pickup/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		for _, s := range []parcel.Status{
			parcel.AwaitingPickup,
			parcel.InHandling,
			parcel.PickedUp,
			parcel.StorageExpired,
		} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, parcel.Unknown.Validate())
		require.Error(t, parcel.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	cases := map[parcel.Status]string{
		parcel.Unknown:        "unknown",
		parcel.AwaitingPickup: "in_giacenza",
		parcel.InHandling:     "in_corso",
		parcel.PickedUp:       "ritirato",
		parcel.StorageExpired: "in_giacenza_scaduto",
		parcel.Status(42):     "unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_FromString(t *testing.T) {
	t.Run("should parse all wire identifiers", func(t *testing.T) {
		cases := map[string]parcel.Status{
			"in_giacenza":         parcel.AwaitingPickup,
			"in_corso":            parcel.InHandling,
			"ritirato":            parcel.PickedUp,
			"in_giacenza_scaduto": parcel.StorageExpired,
		}

		for raw, expected := range cases {
			s, err := parcel.StatusFromString(raw)

			require.NoError(t, err, raw)
			assert.Equal(t, expected, s)
		}
	})

	t.Run("should reject unknown identifiers", func(t *testing.T) {
		for _, raw := range []string{"unknown", "", "delivered"} {
			_, err := parcel.StatusFromString(raw)
			require.Error(t, err, raw)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, parcel.AwaitingPickup.IsTerminal())
	assert.False(t, parcel.InHandling.IsTerminal())
	assert.True(t, parcel.PickedUp.IsTerminal())
	assert.True(t, parcel.StorageExpired.IsTerminal())
}

func TestStatus_PickUp(t *testing.T) {
	t.Run("should allow pickup from awaiting pickup", func(t *testing.T) {
		s, err := parcel.AwaitingPickup.PickUp()

		require.NoError(t, err)
		assert.Equal(t, parcel.PickedUp, s)
	})

	t.Run("should allow pickup from in handling", func(t *testing.T) {
		s, err := parcel.InHandling.PickUp()

		require.NoError(t, err)
		assert.Equal(t, parcel.PickedUp, s)
	})

	t.Run("should reject pickup from terminal states", func(t *testing.T) {
		_, err := parcel.PickedUp.PickUp()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ritirato is not a valid status to pick up")

		_, err = parcel.StorageExpired.PickUp()
		require.Error(t, err)
	})
}

func TestStatus_Expire(t *testing.T) {
	t.Run("should expire only awaiting parcels", func(t *testing.T) {
		s, err := parcel.AwaitingPickup.Expire()

		require.NoError(t, err)
		assert.Equal(t, parcel.StorageExpired, s)
	})

	t.Run("should reject expiry from any other state", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.InHandling, parcel.PickedUp, parcel.StorageExpired} {
			_, err := s.Expire()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_FlagProblemAndResume(t *testing.T) {
	t.Run("should flag awaiting parcel for handling", func(t *testing.T) {
		s, err := parcel.AwaitingPickup.FlagProblem()

		require.NoError(t, err)
		assert.Equal(t, parcel.InHandling, s)
	})

	t.Run("should not flag twice", func(t *testing.T) {
		_, err := parcel.InHandling.FlagProblem()
		require.Error(t, err)
	})

	t.Run("should resume handled parcel", func(t *testing.T) {
		s, err := parcel.InHandling.Resume()

		require.NoError(t, err)
		assert.Equal(t, parcel.AwaitingPickup, s)
	})

	t.Run("should not resume a parcel that is not in handling", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.AwaitingPickup, parcel.PickedUp, parcel.StorageExpired} {
			_, err := s.Resume()
			require.Error(t, err, s.String())
		}
	})
}
