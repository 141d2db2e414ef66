//go:build unit

package session_test

import (
	"testing"
	"time"

	"lanebook/internal/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	start := time.Date(2026, time.June, 2, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 2, 11, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		s, err := session.NewSession("Aqua aerobics", start, end, 10)
		require.NoError(t, err)
		require.NotNil(t, s)

		assert.Equal(t, "Aqua aerobics", s.Title())
		assert.Equal(t, start, s.Start())
		assert.Equal(t, end, s.End())
		assert.Equal(t, int32(10), s.AvailableSlots())
	})

	t.Run("title is trimmed", func(t *testing.T) {
		s, err := session.NewSession("  Evening swim  ", start, end, 5)
		require.NoError(t, err)
		assert.Equal(t, "Evening swim", s.Title())
	})

	t.Run("start and end snap to the half-hour grid", func(t *testing.T) {
		s, err := session.NewSession("Drop-in", start.Add(12*time.Minute), end.Add(40*time.Minute), 5)
		require.NoError(t, err)

		assert.Equal(t, start, s.Start())
		assert.Equal(t, end.Add(30*time.Minute), s.End())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			title    string
			start    time.Time
			end      time.Time
			capacity int32
			errIs    error
		}{
			{name: "empty title", title: "", start: start, end: end, capacity: 5, errIs: session.ErrEmptyTitle},
			{name: "whitespace title", title: "   ", start: start, end: end, capacity: 5, errIs: session.ErrEmptyTitle},
			{name: "end equals start", title: "x", start: start, end: start, capacity: 5, errIs: session.ErrInvalidInterval},
			{name: "end before start", title: "x", start: end, end: start, capacity: 5, errIs: session.ErrInvalidInterval},
			{name: "interval collapses after alignment", title: "x", start: start, end: start.Add(20 * time.Minute), capacity: 5, errIs: session.ErrInvalidInterval},
			{name: "zero capacity", title: "x", start: start, end: end, capacity: 0, errIs: session.ErrInvalidCapacity},
			{name: "negative capacity", title: "x", start: start, end: end, capacity: -1, errIs: session.ErrInvalidCapacity},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				s, err := session.NewSession(c.title, c.start, c.end, c.capacity)
				require.Nil(t, s)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestReconstructSession(t *testing.T) {
	start := time.Date(2026, time.June, 2, 18, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	s := session.ReconstructSession(9, "Masters", start, end, 12)

	assert.Equal(t, int64(9), s.ID())
	assert.Equal(t, "Masters", s.Title())
	assert.Equal(t, start, s.Start())
	assert.Equal(t, end, s.End())
	assert.Equal(t, int32(12), s.AvailableSlots())
}
