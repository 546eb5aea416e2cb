package validation

import (
	"strings"
	"testing"

	"studyflow/internal/domain"
)

func strPtr(s string) *string { return &s }

func firstErrorType(t *testing.T, err error) ValidationErrorType {
	t.Helper()
	validationErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError but got %T", err)
	}
	if len(validationErr.Errors) == 0 {
		t.Fatal("expected validation errors but got none")
	}
	return validationErr.Errors[0].Type
}

func TestTaskValidator_ValidateForCreation(t *testing.T) {
	validator := NewTaskValidator(nil)
	urgent := domain.Priority("urgent")

	tests := []struct {
		name        string
		fields      domain.TaskFields
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Title only", domain.TaskFields{Title: strPtr("Read chapter 4")}, false, ""},
		{"Missing title", domain.TaskFields{Description: strPtr("no title")}, true, ErrorTypeRequired},
		{"Unknown priority", domain.TaskFields{Title: strPtr("x"), Priority: &urgent}, true, ErrorTypeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateForCreation(tt.fields)

			if !tt.expectError {
				if err != nil {
					t.Errorf("ValidateForCreation() expected no error but got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateForCreation() expected error but got nil")
			}
			if got := firstErrorType(t, err); got != tt.errorType {
				t.Errorf("ValidateForCreation() error type = %v, expected %v", got, tt.errorType)
			}
		})
	}
}

func TestTaskValidator_Validate(t *testing.T) {
	validator := NewTaskValidator(nil)

	tests := []struct {
		name        string
		task        domain.Task
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid task", domain.Task{Title: "Essay", Description: "Essay", Priority: domain.PriorityHigh}, false, ""},
		{"Blank title after patch", domain.Task{Title: "  ", Priority: domain.PriorityLow}, true, ErrorTypeRequired},
		{"Too long title", domain.Task{Title: strings.Repeat("a", 256), Priority: domain.PriorityLow}, true, ErrorTypeInvalidLength},
		{"Empty priority", domain.Task{Title: "Essay"}, true, ErrorTypeInvalidValue},
		{"Too long category", domain.Task{Title: "Essay", Priority: domain.PriorityLow, Category: strings.Repeat("c", 256)}, true, ErrorTypeInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(&tt.task)

			if !tt.expectError {
				if err != nil {
					t.Errorf("Validate() expected no error but got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error but got nil")
			}
			if got := firstErrorType(t, err); got != tt.errorType {
				t.Errorf("Validate() error type = %v, expected %v", got, tt.errorType)
			}
		})
	}
}
