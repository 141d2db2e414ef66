//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lanebook/internal/pkg/clock"
	"lanebook/internal/pkg/errs"
	"lanebook/internal/usecase/commands"
	"lanebook/tests/common/fakestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (commands.SessionCommands, commands.BookingCommands, *fakestore.Store) {
	t.Helper()
	store := fakestore.New()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC))
	return commands.NewSessionCommands(store), commands.NewBookingCommands(store, clk, loc), store
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, time.June, 2, 17, 0, 0, 0, time.UTC)

	t.Run("creates a session with an assigned id", func(t *testing.T) {
		cmds, _, _ := newSessionFixture(t)

		created, err := cmds.CreateSession(ctx, commands.CreateSessionInput{
			Title:          "Evening drills",
			Start:          start,
			End:            start.Add(time.Hour),
			AvailableSlots: 8,
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Positive(t, created.ID())
		assert.Equal(t, "Evening drills", created.Title())
		assert.Equal(t, int32(8), created.AvailableSlots())
	})

	t.Run("start and end snap to the grid", func(t *testing.T) {
		cmds, _, _ := newSessionFixture(t)

		created, err := cmds.CreateSession(ctx, commands.CreateSessionInput{
			Title:          "Drop-in",
			Start:          start.Add(10 * time.Minute),
			End:            start.Add(time.Hour + 40*time.Minute),
			AvailableSlots: 4,
		})
		require.NoError(t, err)

		assert.Equal(t, start, created.Start())
		assert.Equal(t, start.Add(time.Hour+30*time.Minute), created.End())
	})

	t.Run("invalid input", func(t *testing.T) {
		cmds, _, _ := newSessionFixture(t)

		cases := []struct {
			name  string
			input commands.CreateSessionInput
		}{
			{
				name:  "empty title",
				input: commands.CreateSessionInput{Title: "  ", Start: start, End: start.Add(time.Hour), AvailableSlots: 5},
			},
			{
				name:  "end before start",
				input: commands.CreateSessionInput{Title: "x", Start: start.Add(time.Hour), End: start, AvailableSlots: 5},
			},
			{
				name:  "zero capacity",
				input: commands.CreateSessionInput{Title: "x", Start: start, End: start.Add(time.Hour), AvailableSlots: 0},
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				created, err := cmds.CreateSession(ctx, c.input)
				require.Nil(t, created)
				require.True(t, errs.Is(err, commands.ErrInvalidSession))
			})
		}
	})
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, time.June, 2, 17, 0, 0, 0, time.UTC)

	t.Run("removes the session and its reservations", func(t *testing.T) {
		sessionCmds, bookingCmds, store := newSessionFixture(t)

		created, err := sessionCmds.CreateSession(ctx, commands.CreateSessionInput{
			Title:          "To be cancelled",
			Start:          start,
			End:            start.Add(time.Hour),
			AvailableSlots: 5,
		})
		require.NoError(t, err)

		_, err = bookingCmds.ReserveSession(ctx, userA, created.ID())
		require.NoError(t, err)
		_, err = bookingCmds.ReserveSession(ctx, userB, created.ID())
		require.NoError(t, err)
		require.Equal(t, 2, store.ReservationCount())

		require.NoError(t, sessionCmds.DeleteSession(ctx, created.ID()))
		assert.Zero(t, store.ReservationCount())

		_, err = bookingCmds.ReserveSession(ctx, userA, created.ID())
		require.True(t, errs.Is(err, commands.ErrSessionNotFound))
	})

	t.Run("missing session", func(t *testing.T) {
		sessionCmds, _, _ := newSessionFixture(t)

		err := sessionCmds.DeleteSession(ctx, 404)
		require.True(t, errs.Is(err, commands.ErrSessionNotFound))
	})
}
