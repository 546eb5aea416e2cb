package validation

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"studyflow/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.ValidationConfig
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	if cfg == nil {
		return NewValidator()
	}
	return &Validator{
		config: &cfg.Validation,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range.
// Length is counted in characters so multi-byte input is not penalized.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTitleLength checks a title-like field against the configured limit
func (v *Validator) IsValidTitleLength(s string) bool {
	return v.IsValidStringLength(s, 1, v.TitleMaxLength())
}

// IsValidContentLength checks a free-text field against the configured limit
func (v *Validator) IsValidContentLength(s string) bool {
	return utf8.RuneCountInString(s) <= v.ContentMaxLength()
}

// IsValidMonth checks that month is a calendar month number
func (v *Validator) IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsValidYear checks that year is positive
func (v *Validator) IsValidYear(year int) bool {
	return year > 0
}

// IsValidAmount checks that an amount is a finite, non-negative number
func (v *Validator) IsValidAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount >= 0
}

// IsValidStudyDuration checks a duration in seconds against the configured maximum
func (v *Validator) IsValidStudyDuration(seconds int64) bool {
	if seconds < 0 {
		return false
	}
	return time.Duration(seconds)*time.Second <= v.MaxStudyDuration()
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TitleMaxLength returns configured maximum title length or default
func (v *Validator) TitleMaxLength() int {
	if v.config != nil {
		return v.config.TitleMaxLength
	}
	return 255 // Default maximum
}

// ContentMaxLength returns configured maximum content length or default
func (v *Validator) ContentMaxLength() int {
	if v.config != nil {
		return v.config.ContentMaxLength
	}
	return 100000
}

// MaxStudyDuration returns configured maximum study duration or default
func (v *Validator) MaxStudyDuration() time.Duration {
	if v.config != nil {
		return v.config.MaxStudyDuration
	}
	return 24 * time.Hour // Default maximum
}

// requireTitle records a required or length error for a title-like field.
func (v *Validator) requireTitle(ve *ValidationError, field, value string) {
	if !v.IsNonEmptyString(value) {
		ve.AddRequiredError(field)
		return
	}
	if !v.IsValidTitleLength(value) {
		ve.AddInvalidLengthError(field, value, 1, v.TitleMaxLength())
	}
}

// optionalTitle records a length error for an optional short label.
func (v *Validator) optionalTitle(ve *ValidationError, field, value string) {
	if value != "" && !v.IsValidStringLength(value, 0, v.TitleMaxLength()) {
		ve.AddInvalidLengthError(field, value, 0, v.TitleMaxLength())
	}
}

// checkContent records a length error for a free-text field.
func (v *Validator) checkContent(ve *ValidationError, field, value string) {
	if !v.IsValidContentLength(value) {
		ve.AddInvalidLengthError(field, len(value), 0, v.ContentMaxLength())
	}
}
