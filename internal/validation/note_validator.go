package validation

import (
	"studyflow/internal/domain"
)

// NoteValidator provides validation for notes
type NoteValidator struct {
	validator *Validator
}

// NewNoteValidator creates a new note validator
func NewNoteValidator(v *Validator) *NoteValidator {
	return &NoteValidator{validator: orDefault(v)}
}

// ValidateForCreation checks that title and content are supplied
func (nv *NoteValidator) ValidateForCreation(f domain.NoteFields) error {
	validationError := NewValidationError()

	if f.Title == nil {
		validationError.AddRequiredError("title")
	}
	if f.Content == nil {
		validationError.AddRequiredError("content")
	}

	return validationError.ErrorOrNil()
}

// Validate validates a complete note
func (nv *NoteValidator) Validate(n *domain.Note) error {
	validationError := NewValidationError()

	nv.validator.requireTitle(validationError, "title", n.Title)
	if !nv.validator.IsNonEmptyString(n.Content) {
		validationError.AddRequiredError("content")
	} else {
		nv.validator.checkContent(validationError, "content", n.Content)
	}
	for _, tag := range n.Tags {
		if !nv.validator.IsValidTitleLength(tag) {
			validationError.AddInvalidLengthError("tags", tag, 1, nv.validator.TitleMaxLength())
			break
		}
	}
	nv.validator.optionalTitle(validationError, "subject", n.Subject)

	return validationError.ErrorOrNil()
}
