//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"lanebook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("already booked")

	t.Run("matches a marked error through its mark", func(t *testing.T) {
		cause := errs.New("duplicate key value violates unique constraint")
		marked := errs.Mark(cause, sentinel)

		require.True(t, errs.Is(marked, sentinel))
		assert.False(t, stderrors.Is(marked, sentinel), "marks are invisible to the standard library")
	})

	t.Run("matches a wrapped mark", func(t *testing.T) {
		cause := errs.New("duplicate key value violates unique constraint")
		wrapped := errs.Wrap(errs.Mark(cause, sentinel), "insert reservation")

		assert.True(t, errs.Is(wrapped, sentinel))
	})

	t.Run("matches the bare sentinel", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
	})

	t.Run("does not match an unrelated error", func(t *testing.T) {
		assert.False(t, errs.Is(errs.New("lane not found"), sentinel))
	})
}

func TestMarkNilErr(t *testing.T) {
	sentinel := errs.New("full")

	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
