package validation

import (
	"studyflow/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator. A nil validator uses defaults.
func NewTaskValidator(v *Validator) *TaskValidator {
	return &TaskValidator{validator: orDefault(v)}
}

// ValidateForCreation checks that the fields required to create a task are present
func (tv *TaskValidator) ValidateForCreation(f domain.TaskFields) error {
	validationError := NewValidationError()

	if f.Title == nil {
		validationError.AddRequiredError("title")
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", *f.Priority, "must be one of low, medium, high")
	}

	return validationError.ErrorOrNil()
}

// Validate validates a complete task, as built for creation or after a patch
func (tv *TaskValidator) Validate(task *domain.Task) error {
	validationError := NewValidationError()

	tv.validator.requireTitle(validationError, "title", task.Title)
	tv.validator.checkContent(validationError, "description", task.Description)
	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority, "must be one of low, medium, high")
	}
	tv.validator.optionalTitle(validationError, "category", task.Category)

	return validationError.ErrorOrNil()
}

func orDefault(v *Validator) *Validator {
	if v == nil {
		return NewValidator()
	}
	return v
}
