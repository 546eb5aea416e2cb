package interpreter

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"studyflow/internal/errors"
)

// Difficulty of generated quiz questions
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether d is a known difficulty.
func (d Difficulty) IsValid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

const modelService = "generative model"

// Assistant answers explicit study requests with the model. Unlike commands,
// model failures here are returned to the caller.
type Assistant struct {
	model  Model
	logger *zap.Logger
}

// NewAssistant creates an assistant. A nil logger discards output.
func NewAssistant(model Model, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{model: model, logger: logger}
}

// StudyPlan drafts a weekly plan for subject
func (a *Assistant) StudyPlan(ctx context.Context, subject string, goals []string, hoursPerWeek int) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", errors.NewInvalidInputError("subject", subject, "subject is required")
	}
	if hoursPerWeek <= 0 {
		return "", errors.NewInvalidInputError("timeAvailable", hoursPerWeek, "must be a positive number of hours")
	}
	return a.generate(ctx, "study plan", studyPlanPrompt(subject, goals, hoursPerWeek))
}

// Summarize condenses notes to their key points
func (a *Assistant) Summarize(ctx context.Context, notes string) (string, error) {
	if strings.TrimSpace(notes) == "" {
		return "", errors.NewInvalidInputError("notes", "", "notes are required")
	}
	return a.generate(ctx, "summary", summaryPrompt(notes))
}

// Quiz writes five multiple choice questions on topic
func (a *Assistant) Quiz(ctx context.Context, topic string, difficulty Difficulty) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", errors.NewInvalidInputError("topic", topic, "topic is required")
	}
	if difficulty == "" {
		difficulty = DifficultyMedium
	}
	if !difficulty.IsValid() {
		return "", errors.NewInvalidInputError("difficulty", difficulty, "must be one of easy, medium, hard")
	}
	return a.generate(ctx, "quiz", quizPrompt(topic, difficulty))
}

func (a *Assistant) generate(ctx context.Context, request, prompt string) (string, error) {
	text, err := a.model.Generate(ctx, prompt)
	if err != nil {
		a.logger.Error("assistant request failed", zap.String("request", request), zap.Error(err))
		return "", errors.NewExternalServiceError(modelService, err)
	}
	return strings.TrimSpace(text), nil
}
