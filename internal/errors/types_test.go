package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorTypePermission, "permission"},
		{ErrorTypeConflict, "conflict"},
		{ErrorTypeMalformedData, "malformed_data"},
		{ErrorTypeUnavailable, "unavailable"},
		{ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	withoutCause := &AppError{Type: ErrorTypeConflict, Message: "timer already running"}
	withCause := &AppError{Type: ErrorTypeMalformedData, Message: "bad json", Cause: errors.New("unexpected EOF")}

	assert.Equal(t, "conflict: timer already running", withoutCause.Error())
	assert.Equal(t, "malformed_data: bad json (caused by: unexpected EOF)", withCause.Error())
}

func TestAppError_Is(t *testing.T) {
	err := NewUnavailableError("read")

	assert.True(t, errors.Is(err, &AppError{Type: ErrorTypeUnavailable, Code: "STORAGE_UNAVAILABLE"}))
	assert.False(t, errors.Is(err, &AppError{Type: ErrorTypeUnavailable, Code: "OTHER"}))
	assert.False(t, errors.Is(err, errors.New("storage unavailable: read")))
}

func TestAppError_Context(t *testing.T) {
	err := &AppError{Type: ErrorTypeDatabase}

	_, ok := err.GetContext("key")
	assert.False(t, ok)

	err.WithContext("key", "my-admin-timesheets").WithContext("attempt", 2)

	value, ok := err.GetContext("key")
	assert.True(t, ok)
	assert.Equal(t, "my-admin-timesheets", value)
	value, _ = err.GetContext("attempt")
	assert.Equal(t, 2, value)
}

func TestAppError_LogArgs(t *testing.T) {
	err := NewConflictError("start timer", "a timer is already running").
		WithContext("title", "Write report").
		WithContext("id", int64(3))

	args := err.LogArgs()

	assert.Equal(t, []any{
		"type", "conflict",
		"code", "CONFLICT",
		"id", int64(3),
		"operation", "start timer",
		"reason", "a timer is already running",
		"title", "Write report",
	}, args)
}

func TestAppError_LogArgsWithoutCode(t *testing.T) {
	err := &AppError{Type: ErrorTypeTimeout, Message: "slow"}

	assert.Equal(t, []any{"type", "timeout"}, err.LogArgs())
}
