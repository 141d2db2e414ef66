//go:build unit

package lane_test

import (
	"testing"

	"lanebook/internal/domain/lane"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLane(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		l, err := lane.NewLane(2, "Lane 2", 3)
		require.NoError(t, err)

		assert.Equal(t, int32(2), l.ID())
		assert.Equal(t, "Lane 2", l.Name())
		assert.Equal(t, int32(3), l.Capacity())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			id       int32
			laneName string
			capacity int32
			errIs    error
		}{
			{name: "zero id", id: 0, laneName: "Lane 0", capacity: 1, errIs: lane.ErrInvalidID},
			{name: "empty name", id: 1, laneName: "", capacity: 1, errIs: lane.ErrEmptyName},
			{name: "zero capacity", id: 1, laneName: "Lane 1", capacity: 0, errIs: lane.ErrInvalidCapacity},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				l, err := lane.NewLane(c.id, c.laneName, c.capacity)
				require.Nil(t, l)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestDefaultLane(t *testing.T) {
	l := lane.DefaultLane(4, 1)

	assert.Equal(t, int32(4), l.ID())
	assert.Equal(t, "Lane 4", l.Name())
	assert.Equal(t, int32(1), l.Capacity())
}
