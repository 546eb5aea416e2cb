package interpreter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "studyflow/internal/errors"
)

func TestAssistant_StudyPlan(t *testing.T) {
	model := &fakeModel{reply: "  Week 1: limits  "}
	assistant := NewAssistant(model, nil)

	plan, err := assistant.StudyPlan(context.Background(), "Calculus", []string{"limits", "derivatives"}, 6)
	require.NoError(t, err)
	assert.Equal(t, "Week 1: limits", plan)
	require.Equal(t, 1, model.calls())
	assert.Contains(t, model.prompts[0], "Calculus")
	assert.Contains(t, model.prompts[0], "limits, derivatives")
	assert.Contains(t, model.prompts[0], "6 hours")
}

func TestAssistant_InvalidInput(t *testing.T) {
	model := &fakeModel{reply: "ok"}
	assistant := NewAssistant(model, nil)
	ctx := context.Background()

	_, err := assistant.StudyPlan(ctx, " ", nil, 5)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

	_, err = assistant.StudyPlan(ctx, "Physics", nil, 0)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

	_, err = assistant.Summarize(ctx, "")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

	_, err = assistant.Quiz(ctx, "Optics", Difficulty("impossible"))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

	assert.Zero(t, model.calls())
}

func TestAssistant_QuizDefaultsToMedium(t *testing.T) {
	model := &fakeModel{reply: "[]"}
	_, err := NewAssistant(model, nil).Quiz(context.Background(), "Optics", "")
	require.NoError(t, err)
	assert.Contains(t, model.prompts[0], "5 medium level quiz questions about Optics")
}

func TestAssistant_ModelFailureIsExternal(t *testing.T) {
	model := &fakeModel{err: errors.New("quota exceeded")}

	_, err := NewAssistant(model, nil).Summarize(context.Background(), "photosynthesis notes")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeExternalService))
	assert.Equal(t, 502, apperrors.HTTPStatus(err))
}

func TestDisabledModel(t *testing.T) {
	_, err := DisabledModel{}.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrModelNotConfigured)
}
