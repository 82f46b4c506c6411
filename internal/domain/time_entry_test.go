package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeEntry(t *testing.T) {
	startTime := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	result := NewTimeEntry("Coding", "Development", startTime)

	assert.Equal(t, "Coding", result.Title)
	assert.Equal(t, "Development", result.Category)
	assert.Equal(t, startTime, result.StartTime)
	assert.Nil(t, result.EndTime)
	assert.Nil(t, result.ElapsedMinutes)
	_, ok := result.Identity()
	assert.False(t, ok)
}

func TestTimeEntry_Identity(t *testing.T) {
	entry := NewTimeEntry("Coding", "Development", time.Now())

	withID := entry.WithIdentity(7)

	id, ok := withID.Identity()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
	_, ok = entry.Identity()
	assert.False(t, ok, "WithIdentity must not modify the receiver")
}

func TestTimeEntry_Stop(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "rounds half minute up",
			start:    time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			end:      time.Date(2025, 3, 10, 10, 45, 30, 0, time.UTC),
			expected: 46,
		},
		{
			name:     "rounds below half down",
			start:    time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			end:      time.Date(2025, 3, 10, 10, 0, 29, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "end before start is clamped",
			start:    time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			end:      time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "exact hours",
			start:    time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			end:      time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
			expected: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewTimeEntry("Coding", "Development", tt.start)

			stopped := entry.Stop(tt.end)

			require.NotNil(t, stopped.EndTime)
			require.NotNil(t, stopped.ElapsedMinutes)
			assert.True(t, stopped.EndTime.Equal(tt.end))
			assert.Equal(t, tt.expected, *stopped.ElapsedMinutes)
			assert.False(t, stopped.IsRunning())
			assert.True(t, entry.IsRunning(), "Stop must return a copy")
		})
	}
}

func TestTimeEntry_Minutes(t *testing.T) {
	running := NewTimeEntry("Coding", "Development", time.Now())
	assert.Equal(t, 0, running.Minutes())

	stopped := running.Stop(running.StartTime.Add(30 * time.Minute))
	assert.Equal(t, 30, stopped.Minutes())
}

func TestTimeEntry_Duration(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	entry := NewTimeEntry("Coding", "Development", start)

	assert.Equal(t, 90*time.Minute, entry.Duration(start.Add(90*time.Minute)))

	stopped := entry.Stop(start.Add(time.Hour))
	assert.Equal(t, time.Hour, stopped.Duration(start.Add(5*time.Hour)))
}

func TestTimeEntry_IsValid(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	before := start.Add(-time.Minute)
	negative := -5

	tests := []struct {
		name     string
		entry    TimeEntry
		expected bool
	}{
		{
			name:     "running entry",
			entry:    NewTimeEntry("Coding", "Development", start),
			expected: true,
		},
		{
			name:     "stopped entry",
			entry:    NewTimeEntry("Coding", "Development", start).Stop(start.Add(time.Hour)),
			expected: true,
		},
		{
			name:     "zero start time",
			entry:    TimeEntry{Title: "Coding"},
			expected: false,
		},
		{
			name:     "end before start",
			entry:    TimeEntry{Title: "Coding", StartTime: start, EndTime: &before},
			expected: false,
		},
		{
			name:     "negative elapsed minutes",
			entry:    TimeEntry{Title: "Coding", StartTime: start, ElapsedMinutes: &negative},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.IsValid())
		})
	}
}

func TestTimeEntry_JSONOmitsAbsentFields(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	entry := NewTimeEntry("Coding", "Development", start).WithIdentity(3)

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":3,"title":"Coding","category":"Development","start_time":"2025-03-10T10:00:00Z"}`, string(data))

	var decoded TimeEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entry, decoded)
}

func TestTimeEntry_StopBeforeStart(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	entry := NewTimeEntry("Coding", "Development", start)

	stopped := entry.Stop(start.Add(-time.Minute))

	assert.True(t, stopped.EndTime.Equal(start))
	assert.Equal(t, 0, *stopped.ElapsedMinutes)
	assert.True(t, stopped.IsValid())
}
