package validation

import (
	"studyflow/internal/domain"
)

// BudgetValidator provides validation for budget entries
type BudgetValidator struct {
	validator *Validator
}

// NewBudgetValidator creates a new budget entry validator
func NewBudgetValidator(v *Validator) *BudgetValidator {
	return &BudgetValidator{validator: orDefault(v)}
}

// ValidateForCreation checks that category, amount, month, year and type are supplied
func (bv *BudgetValidator) ValidateForCreation(f domain.BudgetFields) error {
	validationError := NewValidationError()

	if f.Category == nil {
		validationError.AddRequiredError("category")
	}
	if f.Amount == nil {
		validationError.AddRequiredError("amount")
	}
	if f.Month == nil {
		validationError.AddRequiredError("month")
	}
	if f.Year == nil {
		validationError.AddRequiredError("year")
	}
	if f.Type == nil {
		validationError.AddRequiredError("type")
	}

	return validationError.ErrorOrNil()
}

// Validate validates a complete budget entry
func (bv *BudgetValidator) Validate(b *domain.BudgetEntry) error {
	validationError := NewValidationError()

	bv.validator.requireTitle(validationError, "category", b.Category)
	if !bv.validator.IsValidAmount(b.Amount) {
		validationError.AddInvalidRangeError("amount", b.Amount, "must be a non-negative number")
	}
	if !bv.validator.IsValidAmount(b.Spent) {
		validationError.AddInvalidRangeError("spent", b.Spent, "must be a non-negative number")
	}
	bv.validator.checkContent(validationError, "description", b.Description)
	if !bv.validator.IsValidMonth(b.Month) {
		validationError.AddInvalidRangeError("month", b.Month, "must be between 1 and 12")
	}
	if !bv.validator.IsValidYear(b.Year) {
		validationError.AddInvalidRangeError("year", b.Year, "must be positive")
	}
	if !b.Type.IsValid() {
		validationError.AddInvalidValueError("type", b.Type, "must be income or expense")
	}

	return validationError.ErrorOrNil()
}
