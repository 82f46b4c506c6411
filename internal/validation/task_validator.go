package validation

import (
	"strings"

	"my-admin/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a task validator with default limits
func NewTaskValidator() *TaskValidator {
	return NewTaskValidatorWith(NewValidator())
}

// NewTaskValidatorWith creates a task validator sharing v
func NewTaskValidatorWith(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateTaskTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTaskTitle(title string) error {
	validationError := NewValidationError()
	tv.validator.checkTitle(validationError, "title", title)
	return validationError.result()
}

// ValidateStatus checks that status is one of the known task statuses
func (tv *TaskValidator) ValidateStatus(status domain.TaskStatus) error {
	if status.IsValid() {
		return nil
	}
	names := make([]string, len(domain.TaskStatuses))
	for i, s := range domain.TaskStatuses {
		names[i] = string(s)
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("status", status, "must be one of "+strings.Join(names, ", "))
	return validationError
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	validationError.merge(tv.ValidateTaskTitle(task.Title))
	validationError.merge(tv.ValidateStatus(task.Status))
	if id, ok := task.Identity(); ok && !tv.validator.IsValidID(id) {
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
	}

	return validationError.result()
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskTitle returns a cleaned task title if valid
func (tv *TaskValidator) GetValidTaskTitle(title string) (string, error) {
	if err := tv.ValidateTaskTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
