package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		name            string
		err             *AppError
		expectedType    ErrorType
		expectedCode    string
		expectedMessage string
		contextKey      string
		contextValue    any
	}{
		{
			name:            "validation",
			err:             NewValidationError("title is required", cause),
			expectedType:    ErrorTypeValidation,
			expectedCode:    "VALIDATION_FAILED",
			expectedMessage: "title is required",
		},
		{
			name:            "not found",
			err:             NewNotFoundError("task", "12"),
			expectedType:    ErrorTypeNotFound,
			expectedCode:    "NOT_FOUND",
			expectedMessage: "task not found: 12",
			contextKey:      "identifier",
			contextValue:    "12",
		},
		{
			name:            "database",
			err:             NewDatabaseError("write collection", cause),
			expectedType:    ErrorTypeDatabase,
			expectedCode:    "DATABASE_ERROR",
			expectedMessage: "database operation failed: write collection",
			contextKey:      "operation",
			contextValue:    "write collection",
		},
		{
			name:            "invalid input",
			err:             NewInvalidInputError("amount", "-3", "must not be negative"),
			expectedType:    ErrorTypeInvalidInput,
			expectedCode:    "INVALID_INPUT",
			expectedMessage: "invalid input for amount: must not be negative",
			contextKey:      "field",
			contextValue:    "amount",
		},
		{
			name:            "timeout",
			err:             NewTimeoutError("read collection", "10s"),
			expectedType:    ErrorTypeTimeout,
			expectedCode:    "TIMEOUT",
			expectedMessage: "operation timed out: read collection",
		},
		{
			name:            "permission",
			err:             NewPermissionError("create", "/data"),
			expectedType:    ErrorTypePermission,
			expectedCode:    "PERMISSION_DENIED",
			expectedMessage: "permission denied for create on /data",
		},
		{
			name:            "conflict",
			err:             NewConflictError("start timer", "a timer is already running"),
			expectedType:    ErrorTypeConflict,
			expectedCode:    "CONFLICT",
			expectedMessage: "cannot start timer: a timer is already running",
			contextKey:      "reason",
			contextValue:    "a timer is already running",
		},
		{
			name:            "malformed data",
			err:             NewMalformedDataError("my-admin-todos", cause),
			expectedType:    ErrorTypeMalformedData,
			expectedCode:    "MALFORMED_DATA",
			expectedMessage: "stored data is malformed: my-admin-todos",
			contextKey:      "key",
			contextValue:    "my-admin-todos",
		},
		{
			name:            "unavailable",
			err:             NewUnavailableError("read"),
			expectedType:    ErrorTypeUnavailable,
			expectedCode:    "STORAGE_UNAVAILABLE",
			expectedMessage: "storage unavailable: read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedType, tt.err.Type)
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.expectedMessage, tt.err.Message)
			if tt.contextKey != "" {
				value, ok := tt.err.GetContext(tt.contextKey)
				require.True(t, ok)
				assert.Equal(t, tt.contextValue, value)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("boom")

	err := WrapError(cause, ErrorTypeDatabase, "saving tasks")

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Equal(t, "database", err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewConflictError("delete entry", "timer is running"))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeConflict, appErr.Type)
	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsErrorType(wrapped, ErrorTypeConflict))
	assert.False(t, IsErrorType(wrapped, ErrorTypeNotFound))

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeConflict))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "validation", err: NewValidationError("title is required", nil), expected: "title is required"},
		{name: "not found", err: NewNotFoundError("task", "3"), expected: "task not found: 3"},
		{name: "conflict", err: NewConflictError("start timer", "a timer is already running"), expected: "cannot start timer: a timer is already running"},
		{name: "database", err: NewDatabaseError("query", errors.New("locked")), expected: "A database error occurred. Please try again."},
		{name: "timeout", err: NewTimeoutError("query", "5s"), expected: "The operation timed out. Please try again."},
		{name: "malformed", err: NewMalformedDataError("k", nil), expected: "Stored data could not be read and was reset."},
		{name: "unavailable", err: NewUnavailableError("write"), expected: "Storage is not available; changes were not saved."},
		{name: "plain error", err: errors.New("plain"), expected: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "CONFLICT", GetErrorCode(NewConflictError("a", "b")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("plain")))
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "validation", err: NewValidationError("bad", nil), expected: false},
		{name: "not found", err: NewNotFoundError("task", "1"), expected: false},
		{name: "invalid input", err: NewInvalidInputError("date", "x", "bad"), expected: false},
		{name: "conflict", err: NewConflictError("start timer", "running"), expected: false},
		{name: "database", err: NewDatabaseError("query", nil), expected: true},
		{name: "malformed", err: NewMalformedDataError("k", nil), expected: true},
		{name: "unavailable", err: NewUnavailableError("read"), expected: true},
		{name: "plain", err: errors.New("plain"), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShouldLogError(tt.err))
		})
	}
}
