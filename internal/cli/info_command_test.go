package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoCommand(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		h := newHarness(t, at(12, 15, 0))
		out := h.mustRun("info")
		assert.Equal(t, "Backend:         memory\nLocation:        process memory\nSchema version:  n/a\nNo collections stored\n", out)
	})

	t.Run("lists written collections", func(t *testing.T) {
		h := newHarness(t, at(12, 15, 0))
		h.mustRun("task", "add", "Buy milk")
		h.mustRun("sub", "add", "Music", "--amount", "500")

		out := h.mustRun("info")
		assert.Contains(t, out, "Backend:         memory\n")
		assert.Regexp(t, `(?m)^my-admin-subscriptions\s+\d+  -$`, out)
		assert.Regexp(t, `(?m)^my-admin-todos\s+\d+  -$`, out)
		assert.NotContains(t, out, "timesheets")
	})
}
