package cli

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputCommand_CSV(t *testing.T) {
	h := newHarness(t, at(12, 15, 0))
	h.saveEntry("Write tests", at(11, 9, 0), 90)
	h.saveEntry("Notes, misc", at(12, 9, 0), 30)
	h.mustRun("start", "Live")

	out := h.mustRun("output", "format=csv")
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, []string{"ID", "Title", "Category", "Start Time", "End Time", "Elapsed Minutes", "Duration (hours)"}, records[0])
	assert.Equal(t, []string{"3", "Live", "Development", "2025-03-12T15:00:00Z", "", "", ""}, records[1])
	assert.Equal(t, []string{"2", "Notes, misc", "Development", "2025-03-12T09:00:00Z", "2025-03-12T09:30:00Z", "30", "0.50"}, records[2])
	assert.Equal(t, []string{"1", "Write tests", "Development", "2025-03-11T09:00:00Z", "2025-03-11T10:30:00Z", "90", "1.50"}, records[3])
}

func TestOutputCommand_Errors(t *testing.T) {
	h := newHarness(t, at(12, 15, 0))

	tests := []struct {
		arg      string
		expected string
	}{
		{"csv", "invalid format option"},
		{"format=xml", "unsupported format"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, err := h.run("output", tt.arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}

	_, err := h.run("output")
	assert.Error(t, err)
}
