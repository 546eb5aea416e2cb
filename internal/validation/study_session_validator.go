package validation

import (
	"fmt"

	"studyflow/internal/domain"
)

// StudySessionValidator provides validation for study sessions
type StudySessionValidator struct {
	validator *Validator
}

// NewStudySessionValidator creates a new study session validator
func NewStudySessionValidator(v *Validator) *StudySessionValidator {
	return &StudySessionValidator{validator: orDefault(v)}
}

// ValidateForCreation checks that subject, duration, type and date are supplied
func (sv *StudySessionValidator) ValidateForCreation(f domain.StudySessionFields) error {
	validationError := NewValidationError()

	if f.Subject == nil {
		validationError.AddRequiredError("subject")
	}
	if f.Duration == nil {
		validationError.AddRequiredError("duration")
	}
	if f.Type == nil {
		validationError.AddRequiredError("type")
	}
	if f.Date == nil {
		validationError.AddRequiredError("date")
	}

	return validationError.ErrorOrNil()
}

// Validate validates a complete study session
func (sv *StudySessionValidator) Validate(s *domain.StudySession) error {
	validationError := NewValidationError()

	sv.validator.requireTitle(validationError, "subject", s.Subject)
	if !sv.validator.IsValidStudyDuration(s.Duration) {
		reason := fmt.Sprintf("must be between 0 and %d seconds", int64(sv.validator.MaxStudyDuration().Seconds()))
		validationError.AddInvalidRangeError("duration", s.Duration, reason)
	}
	if !s.Type.IsValid() {
		validationError.AddInvalidValueError("type", s.Type, "must be one of study, break, pomodoro")
	}
	if s.Date.IsZero() {
		validationError.AddRequiredError("date")
	}
	sv.validator.checkContent(validationError, "notes", s.Notes)

	return validationError.ErrorOrNil()
}
