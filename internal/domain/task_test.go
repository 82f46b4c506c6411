package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Write design doc")

	assert.Equal(t, "Write design doc", task.Title)
	assert.Equal(t, TaskStatusPending, task.Status)
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.ID)
}

func TestTaskStatus_IsValid(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, true},
		{TaskStatusInProgress, true},
		{TaskStatusCompleted, true},
		{"done", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.IsValid())
		})
	}
}

func TestTask_IsValid(t *testing.T) {
	assert.True(t, NewTask("Review PR").IsValid())
	assert.False(t, Task{Title: "Review PR", Status: "archived"}.IsValid())
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "Review PR", NewTask("Review PR").String())
}

func TestTask_JSONRoundTrip(t *testing.T) {
	due := NewDate(2025, 4, 1)
	task := NewTask("File taxes").WithIdentity(2)
	task.DueDate = &due

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"title":"File taxes","status":"pending","due_date":"2025-04-01"}`, string(data))

	var decoded Task
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, task, decoded)
}
