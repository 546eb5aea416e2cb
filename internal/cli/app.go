package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"studyflow/internal/api"
	"studyflow/internal/config"
	"studyflow/internal/identity"
	"studyflow/internal/interpreter"
	"studyflow/internal/repository"
	"studyflow/internal/services"
	"studyflow/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// ModelFactory builds the generative model from its configuration
type ModelFactory func(ctx context.Context, cfg config.ModelConfig) (interpreter.Model, error)

// DefaultModelFactory connects to the Gemini API
func DefaultModelFactory(ctx context.Context, cfg config.ModelConfig) (interpreter.Model, error) {
	model, err := interpreter.NewGenAIModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return model, nil
}

// App is the wired service graph behind the HTTP server
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     repository.Store
	Services  *services.ServiceContainer
	Runner    *interpreter.Runner
	Assistant *interpreter.Assistant
	Verifier  identity.Verifier
	Location  *time.Location
}

// NewApp opens the store and builds every collaborator. A missing model API
// key is not fatal: commands then resolve to unknown and the assistant
// routes answer 502.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger, newModel ModelFactory) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone: %w", err)
	}

	verifier, err := newVerifier(ctx, cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to set up identity verification: %w", err)
	}
	if len(verifier) == 0 {
		logger.Warn("no identity provider configured, every authenticated request will be rejected")
	}

	model, err := newModel(ctx, cfg.Model)
	if err != nil {
		if !errors.Is(err, interpreter.ErrModelNotConfigured) {
			return nil, fmt.Errorf("failed to create generative model: %w", err)
		}
		logger.Warn("generative model not configured, commands will be treated as unknown")
		model = interpreter.DisabledModel{}
	}

	store, err := config.CreateStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	container := services.NewServiceContainer(store, validation.NewValidatorWithConfig(cfg))
	runner := interpreter.NewRunner(
		interpreter.New(model, logger),
		interpreter.NewDispatcher(container, logger),
		timeNow,
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Services:  container,
		Runner:    runner,
		Assistant: interpreter.NewAssistant(model, logger),
		Verifier:  verifier,
		Location:  loc,
	}, nil
}

// newVerifier builds the identity chain: Google ID tokens first, then the
// development token
func newVerifier(ctx context.Context, auth config.AuthConfig) (identity.Chain, error) {
	var chain identity.Chain
	if auth.GoogleClientID != "" {
		google, err := identity.NewGoogleVerifier(ctx, auth.GoogleClientID)
		if err != nil {
			return nil, err
		}
		chain = append(chain, google)
	}
	if auth.DevToken != "" {
		chain = append(chain, identity.NewStaticVerifier(auth.DevToken, identity.DevIdentity))
	}
	return chain, nil
}

// Handler returns the HTTP router
func (a *App) Handler() http.Handler {
	return api.New(api.Dependencies{
		Services:      a.Services,
		Runner:        a.Runner,
		Assistant:     a.Assistant,
		Verifier:      a.Verifier,
		Store:         a.Store,
		Logger:        a.Logger,
		FrontendURL:   a.Config.Server.FrontendURL,
		Environment:   a.Config.Application.Env,
		Location:      a.Location,
		HealthTimeout: a.Config.Database.QueryTimeout,
	})
}

// Close releases the store
func (a *App) Close() error {
	return a.Store.Close()
}
