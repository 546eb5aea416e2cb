package validation

import (
	"studyflow/internal/domain"
)

// ReminderValidator provides validation for reminders
type ReminderValidator struct {
	validator *Validator
}

// NewReminderValidator creates a new reminder validator
func NewReminderValidator(v *Validator) *ReminderValidator {
	return &ReminderValidator{validator: orDefault(v)}
}

// ValidateForCreation checks that title, message and date are supplied
func (rv *ReminderValidator) ValidateForCreation(f domain.ReminderFields) error {
	validationError := NewValidationError()

	if f.Title == nil {
		validationError.AddRequiredError("title")
	}
	if f.Message == nil {
		validationError.AddRequiredError("message")
	}
	if f.Date == nil {
		validationError.AddRequiredError("date")
	}

	return validationError.ErrorOrNil()
}

// Validate validates a complete reminder
func (rv *ReminderValidator) Validate(r *domain.Reminder) error {
	validationError := NewValidationError()

	rv.validator.requireTitle(validationError, "title", r.Title)
	if !rv.validator.IsNonEmptyString(r.Message) {
		validationError.AddRequiredError("message")
	} else {
		rv.validator.checkContent(validationError, "message", r.Message)
	}
	if r.Date.IsZero() {
		validationError.AddRequiredError("date")
	}
	if r.RecurringType != "" && !r.RecurringType.IsValid() {
		validationError.AddInvalidValueError("recurringType", r.RecurringType, "must be one of daily, weekly, monthly")
	}

	return validationError.ErrorOrNil()
}
