//go:build unit

package booking_test

import (
	"testing"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	userID := uuid.New()
	slotID := uuid.New()

	b := booking.NewBooking(userID, slotID, pricing.MustMoney(3000))

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.True(t, b.IsActive())
	assert.True(t, b.IsOwnedBy(userID))
	assert.False(t, b.IsOwnedBy(uuid.New()))
	assert.Equal(t, int64(3000), b.TotalPrice().Cents())
}

func TestStatusTransitions(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), pricing.MustMoney(0))
		require.NoError(t, b.Confirm())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.True(t, b.IsActive())
	})

	t.Run("confirming twice is invalid", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), pricing.MustMoney(0))
		require.NoError(t, b.Confirm())
		assert.ErrorIs(t, b.Confirm(), booking.ErrInvalidTransition)
	})

	t.Run("cancel from pending and confirmed", func(t *testing.T) {
		pending := booking.NewBooking(uuid.New(), uuid.New(), pricing.MustMoney(0))
		require.NoError(t, pending.Cancel())
		assert.False(t, pending.IsActive())

		confirmed := booking.NewBooking(uuid.New(), uuid.New(), pricing.MustMoney(0))
		require.NoError(t, confirmed.Confirm())
		require.NoError(t, confirmed.Cancel())
		assert.False(t, confirmed.IsActive())
	})

	t.Run("cancelling a cancelled booking reports already cancelled", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), pricing.MustMoney(0))
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("confirm after cancel is rejected", func(t *testing.T) {
		b := booking.NewBooking(uuid.New(), uuid.New(), pricing.MustMoney(0))
		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Confirm(), booking.ErrAlreadyCancelled)
	})
}

func TestStatusParsing(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled"} {
		status, err := booking.NewStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := booking.NewStatus("refunded")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	assert.True(t, booking.StatusPending.IsActive())
	assert.True(t, booking.StatusConfirmed.IsActive())
	assert.False(t, booking.StatusCancelled.IsActive())
}
