package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "studyflow/internal/errors"
	"studyflow/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("title")

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Field validation error",
			operation: "create task",
			err:       ve,
			expected:  "failed to create task: title is required",
		},
		{
			name:      "Not found error",
			operation: "update note",
			err:       apperrors.NewNotFoundError("Note", "abc"),
			expected:  "failed to update note: Note not found: abc",
		},
		{
			name:      "Database error hides cause",
			operation: "migrate database",
			err:       apperrors.NewDatabaseError("run migrations", errors.New("disk I/O error")),
			expected:  "failed to migrate database: A database error occurred. Please try again.",
		},
		{
			name:      "Model failure hides cause",
			operation: "interpret command",
			err:       apperrors.NewExternalServiceError("generative model", errors.New("quota exceeded")),
			expected:  "failed to interpret command: An upstream service is unavailable. Please try again.",
		},
		{
			name:      "Plain error",
			operation: "serve",
			err:       errors.New("address already in use"),
			expected:  "failed to serve: address already in use",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, eh.Handle(tt.operation, tt.err), tt.expected)
		})
	}

	assert.NoError(t, eh.Handle("anything", nil))
}

func TestErrorHandler_HandleKeepsPlainCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorHandler().Handle("start server", cause)
	assert.ErrorIs(t, err, cause)
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	assert.EqualError(t, eh.HandleSimple(apperrors.NewConflictError("run command", "another command is still being processed")),
		"run command: another command is still being processed")
	assert.EqualError(t, eh.HandleSimple(apperrors.NewStoreUnavailableError(errors.New("no route"))),
		"Storage is currently unavailable. Please try again later.")
	assert.EqualError(t, eh.HandleSimple(errors.New("regular error")), "regular error")
	assert.NoError(t, eh.HandleSimple(nil))
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("title")

	assert.True(t, eh.IsValidationError(ve))
	assert.True(t, eh.IsValidationError(apperrors.NewValidationError("bad", nil)))
	assert.False(t, eh.IsValidationError(errors.New("other")))

	assert.True(t, eh.IsNotFoundError(apperrors.NewNotFoundError("Task", "1")))
	assert.False(t, eh.IsNotFoundError(apperrors.NewAuthError("missing bearer token", nil)))

	assert.True(t, eh.IsDatabaseError(apperrors.NewDatabaseError("insert", nil)))
	assert.True(t, eh.IsDatabaseError(apperrors.NewStoreUnavailableError(nil)))

	assert.Equal(t, "CONFLICT", eh.GetErrorCode(apperrors.NewConflictError("run command", "busy")))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(errors.New("plain")))
}
