package cli

import (
	stderrors "errors"
	"fmt"
	"log/slog"

	"my-admin/internal/errors"
	"my-admin/internal/logging"
	"my-admin/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{logger: logging.WithComponent(nil, logging.ComponentCLI)}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	eh.log(operation, err)

	if appErr, ok := eh.asAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(appErr))
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if appErr, ok := eh.asAppError(err); ok {
		return stderrors.New(errors.GetUserMessage(appErr))
	}
	return err
}

// asAppError returns err as a structured error. Field validation errors are
// converted so they share one reporting path.
func (eh *ErrorHandler) asAppError(err error) (*errors.AppError, bool) {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.ToAppError(), true
	}
	return errors.AsAppError(err)
}

// log records system failures. User mistakes are only reported back.
func (eh *ErrorHandler) log(operation string, err error) {
	appErr, ok := eh.asAppError(err)
	if ok && !errors.ShouldLogError(appErr) {
		return
	}
	args := []any{logging.FieldOperation, operation, logging.FieldError, err}
	if ok {
		args = append(args, appErr.LogArgs()...)
	} else {
		args = append(args, "code", eh.GetErrorCode(err))
	}
	eh.logger.Error("command failed", args...)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	if appErr, ok := eh.asAppError(err); ok {
		return appErr.Code
	}
	return errors.GetErrorCode(err)
}
