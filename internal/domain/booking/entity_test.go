//go:build unit

package booking_test

import (
	"testing"
	"time"

	"lanebook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	alignedSlot := time.Date(2026, time.June, 2, 8, 30, 0, 0, time.UTC)

	t.Run("lane slot target", func(t *testing.T) {
		b, err := booking.NewBooking(1, booking.LaneSlot{LaneID: 3, SlotStart: alignedSlot})
		require.NoError(t, err)
		require.NotNil(t, b)

		slot, ok := b.LaneSlot()
		require.True(t, ok)
		assert.Equal(t, int32(3), slot.LaneID)
		assert.Equal(t, alignedSlot, slot.SlotStart)

		_, ok = b.SessionEntry()
		assert.False(t, ok)
	})

	t.Run("session target", func(t *testing.T) {
		b, err := booking.NewBooking(1, booking.SessionEntry{SessionID: 42})
		require.NoError(t, err)

		entry, ok := b.SessionEntry()
		require.True(t, ok)
		assert.Equal(t, int64(42), entry.SessionID)

		_, ok = b.LaneSlot()
		assert.False(t, ok)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			userID int64
			target booking.Target
			errIs  error
		}{
			{
				name:   "zero user",
				userID: 0,
				target: booking.LaneSlot{LaneID: 1, SlotStart: alignedSlot},
				errIs:  booking.ErrInvalidUser,
			},
			{
				name:   "negative user",
				userID: -5,
				target: booking.SessionEntry{SessionID: 1},
				errIs:  booking.ErrInvalidUser,
			},
			{
				name:   "nil target",
				userID: 1,
				target: nil,
				errIs:  booking.ErrMissingTarget,
			},
			{
				name:   "zero lane",
				userID: 1,
				target: booking.LaneSlot{LaneID: 0, SlotStart: alignedSlot},
				errIs:  booking.ErrInvalidLane,
			},
			{
				name:   "unaligned slot start",
				userID: 1,
				target: booking.LaneSlot{LaneID: 1, SlotStart: alignedSlot.Add(10 * time.Minute)},
				errIs:  booking.ErrUnalignedSlot,
			},
			{
				name:   "slot start with seconds",
				userID: 1,
				target: booking.LaneSlot{LaneID: 1, SlotStart: alignedSlot.Add(time.Second)},
				errIs:  booking.ErrUnalignedSlot,
			},
			{
				name:   "zero session id",
				userID: 1,
				target: booking.SessionEntry{SessionID: 0},
				errIs:  booking.ErrInvalidSessionID,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b, err := booking.NewBooking(c.userID, c.target)
				require.Nil(t, b)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestReconstructBooking(t *testing.T) {
	createdAt := time.Date(2026, time.June, 2, 9, 0, 0, 0, time.UTC)
	target := booking.SessionEntry{SessionID: 7}

	b := booking.ReconstructBooking(10, 2, target, createdAt)

	assert.Equal(t, int64(10), b.ID())
	assert.Equal(t, int64(2), b.UserID())
	assert.Equal(t, target, b.Target())
	assert.Equal(t, createdAt, b.CreatedAt())
}
