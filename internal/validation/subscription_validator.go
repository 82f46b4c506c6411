package validation

import (
	"my-admin/internal/domain"
)

const maxNotesLength = 1000

// SubscriptionValidator validates subscription plans
type SubscriptionValidator struct {
	validator *Validator
}

// NewSubscriptionValidator creates a subscription validator with default limits
func NewSubscriptionValidator() *SubscriptionValidator {
	return NewSubscriptionValidatorWith(NewValidator())
}

// NewSubscriptionValidatorWith creates a subscription validator sharing v
func NewSubscriptionValidatorWith(v *Validator) *SubscriptionValidator {
	return &SubscriptionValidator{validator: v}
}

// ValidateSubscription checks the service name, amount, frequency and free-text fields.
func (sv *SubscriptionValidator) ValidateSubscription(plan domain.SubscriptionPlan) error {
	validationError := NewValidationError()

	sv.validator.checkTitle(validationError, "service_name", plan.ServiceName)

	if plan.Amount == nil {
		validationError.AddRequiredError("amount")
	} else if *plan.Amount < 0 {
		validationError.AddInvalidValueError("amount", *plan.Amount, "must not be negative")
	}

	if !plan.Frequency.IsValid() {
		validationError.AddInvalidValueError("frequency", plan.Frequency, "must be one of daily, weekly, monthly, yearly")
	}

	if plan.Plan != nil && !sv.validator.IsValidStringLength(*plan.Plan, 0, sv.validator.limits.TitleMaxLength) {
		validationError.AddInvalidLengthError("plan", *plan.Plan, 0, sv.validator.limits.TitleMaxLength)
	}
	if plan.Notes != nil && !sv.validator.IsValidStringLength(*plan.Notes, 0, maxNotesLength) {
		validationError.AddInvalidLengthError("notes", *plan.Notes, 0, maxNotesLength)
	}

	return validationError.result()
}

// ValidateSubscriptionID validates a subscription ID
func (sv *SubscriptionValidator) ValidateSubscriptionID(id int64) error {
	if !sv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("subscription_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
