package interpreter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"studyflow/internal/config"
)

// Model is a generative text collaborator: a prompt in, an unstructured
// completion out. Implementations must be safe for concurrent use.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrModelNotConfigured is returned when no API key is available.
var ErrModelNotConfigured = errors.New("generative model is not configured")

// GenAIModel generates text with the Gemini API
type GenAIModel struct {
	client  *genai.Client
	name    string
	timeout time.Duration
}

// NewGenAIModel creates a Gemini client from the model configuration
func NewGenAIModel(ctx context.Context, cfg config.ModelConfig) (*GenAIModel, error) {
	if cfg.APIKey == "" {
		return nil, ErrModelNotConfigured
	}

	name := cfg.Name
	if name == "" {
		name = config.DefaultModelName
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIModel{client: client, name: name, timeout: cfg.Timeout}, nil
}

// Generate sends prompt as a single user turn and returns the text of the reply
func (m *GenAIModel) Generate(ctx context.Context, prompt string) (string, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.name, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("GenAI returned an empty response")
	}
	return text, nil
}

// Name returns the model name.
func (m *GenAIModel) Name() string {
	return fmt.Sprintf("genai:%s", m.name)
}

// DisabledModel stands in when no model is configured; every call fails.
type DisabledModel struct{}

func (DisabledModel) Generate(context.Context, string) (string, error) {
	return "", ErrModelNotConfigured
}
