package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCommand(t *testing.T) {
	t.Run("starts a timer", func(t *testing.T) {
		h := newHarness(t, at(10, 9, 0))

		out := h.mustRun("start", "Write", "report", "-c", "Documentation")
		assert.Equal(t, "Started: Write report [Documentation] at 2025-03-10 09:00\n", out)

		all, err := h.stores.TimeEntries.GetAll(t.Context())
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, all[0].IsRunning())
	})

	t.Run("default category", func(t *testing.T) {
		h := newHarness(t, at(10, 9, 0))
		out := h.mustRun("start", "Coding")
		assert.Contains(t, out, "[Development]")
	})

	t.Run("refuses a second running timer", func(t *testing.T) {
		h := newHarness(t, at(10, 9, 0))
		h.mustRun("start", "First")

		_, err := h.run("start", "Second")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"First" is already running`)

		all, err := h.stores.TimeEntries.GetAll(t.Context())
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("blank title", func(t *testing.T) {
		h := newHarness(t, at(10, 9, 0))
		_, err := h.run("start", "   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start timer")
	})

	t.Run("requires a title", func(t *testing.T) {
		h := newHarness(t, at(10, 9, 0))
		_, err := h.run("start")
		assert.Error(t, err)
	})
}
