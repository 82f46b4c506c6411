package validation

import (
	"fmt"
	"time"

	"my-admin/internal/domain"
)

// TimeEntryValidator provides validation for TimeEntry-related operations
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a time entry validator with default limits
func NewTimeEntryValidator() *TimeEntryValidator {
	return NewTimeEntryValidatorWith(NewValidator())
}

// NewTimeEntryValidatorWith creates a time entry validator sharing v
func NewTimeEntryValidatorWith(v *Validator) *TimeEntryValidator {
	return &TimeEntryValidator{validator: v}
}

// ValidateStart validates the title and category of a timer about to start
func (tev *TimeEntryValidator) ValidateStart(title, category string) error {
	validationError := NewValidationError()
	tev.validator.checkTitle(validationError, "title", title)
	tev.validator.checkTitle(validationError, "category", category)
	return validationError.result()
}

// ValidateManualEntry validates a completed entry typed in by the user. The end
// time is required so that a manual entry can never be left running.
func (tev *TimeEntryValidator) ValidateManualEntry(title, category string, startTime time.Time, endTime *time.Time) error {
	validationError := NewValidationError()
	validationError.merge(tev.ValidateStart(title, category))

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	}
	if endTime == nil || endTime.IsZero() {
		validationError.AddRequiredError("end_time")
	}

	if validationError.HasErrors() {
		return validationError
	}

	validationError.merge(tev.validateRange(startTime, endTime))
	return validationError.result()
}

// ValidateTimeEntry validates a domain.TimeEntry before it is updated
func (tev *TimeEntryValidator) ValidateTimeEntry(entry domain.TimeEntry) error {
	validationError := NewValidationError()

	if id, ok := entry.Identity(); ok && !tev.validator.IsValidID(id) {
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
	}
	validationError.merge(tev.ValidateStart(entry.Title, entry.Category))
	if entry.StartTime.IsZero() {
		validationError.AddRequiredError("start_time")
	} else {
		validationError.merge(tev.validateRange(entry.StartTime, entry.EndTime))
	}

	return validationError.result()
}

func (tev *TimeEntryValidator) validateRange(startTime time.Time, endTime *time.Time) error {
	if endTime == nil {
		return nil
	}
	validationError := NewValidationError()
	if !tev.validator.IsValidTimeRange(startTime, endTime) {
		validationError.AddInvalidRangeError("time_range", map[string]time.Time{
			"start": startTime,
			"end":   *endTime,
		}, "end time must not be before start time")
		return validationError
	}
	duration := endTime.Sub(startTime)
	if !tev.validator.IsValidDuration(duration) {
		validationError.AddInvalidValueError("duration", duration,
			fmt.Sprintf("must not exceed %s", tev.validator.limits.MaxDuration))
	}
	return validationError.result()
}

// ValidateTimeEntryID validates a time entry ID
func (tev *TimeEntryValidator) ValidateTimeEntryID(id int64) error {
	if !tev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("time_entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateDateRange validates an inclusive reporting range
func (tev *TimeEntryValidator) ValidateDateRange(start, end domain.Date) error {
	if !tev.validator.IsValidDateRange(start, end) {
		validationError := NewValidationError()
		validationError.AddInvalidRangeError("date_range", map[string]domain.Date{
			"start": start,
			"end":   end,
		}, "end date must be on or after start date")
		return validationError
	}
	return nil
}

// ValidateTimeShorthand validates time shorthand format (e.g., "30m", "2h", "1d")
func (tev *TimeEntryValidator) ValidateTimeShorthand(shorthand string) error {
	if !tev.validator.IsValidTimeShorthand(shorthand) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("time_shorthand", shorthand, "30m, 2h, 1d, 2w, 3mo, 1y")
		return validationError
	}
	return nil
}
