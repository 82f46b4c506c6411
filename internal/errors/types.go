package errors

import (
	"fmt"
	"sort"
)

// ErrorType represents the category of error
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
	ErrorTypePermission
	ErrorTypeConflict
	ErrorTypeMalformedData
	ErrorTypeUnavailable
)

var errorTypeNames = [...]string{
	ErrorTypeValidation:    "validation",
	ErrorTypeNotFound:      "not_found",
	ErrorTypeDatabase:      "database",
	ErrorTypeInvalidInput:  "invalid_input",
	ErrorTypeTimeout:       "timeout",
	ErrorTypePermission:    "permission",
	ErrorTypeConflict:      "conflict",
	ErrorTypeMalformedData: "malformed_data",
	ErrorTypeUnavailable:   "unavailable",
}

// String returns the snake_case name of the error type, or "unknown".
func (et ErrorType) String() string {
	if et < 0 || int(et) >= len(errorTypeNames) {
		return "unknown"
	}
	return errorTypeNames[et]
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error type
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves context information from the error
func (e *AppError) GetContext(key string) (any, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}

// LogArgs returns the error's type, code and context as slog key/value pairs,
// with context keys in sorted order.
func (e *AppError) LogArgs() []any {
	args := []any{"type", e.Type.String()}
	if e.Code != "" {
		args = append(args, "code", e.Code)
	}
	keys := make([]string, 0, len(e.Context))
	for key := range e.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		args = append(args, key, e.Context[key])
	}
	return args
}