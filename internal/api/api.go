// Package api is the REST surface: per-kind resource endpoints, the command
// endpoint, analytics and the study assistant, all behind bearer
// authentication except the liveness routes.
package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studyflow/internal/domain"
	"studyflow/internal/identity"
	"studyflow/internal/interpreter"
	"studyflow/internal/services"
)

// Pinger reports whether the document store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the collaborators the router dispatches to
type Dependencies struct {
	Services  *services.ServiceContainer
	Runner    *interpreter.Runner
	Assistant *interpreter.Assistant
	Verifier  identity.Verifier
	Store     Pinger
	Logger    *zap.Logger

	// FrontendURL is the allowed CORS origin; empty or "*" allows any.
	FrontendURL string
	// Environment is reported by the banner route.
	Environment string
	// Location is the time zone used when a request names none.
	Location *time.Location
	// HealthTimeout bounds the store ping of the health route.
	HealthTimeout time.Duration
}

type server struct {
	deps   Dependencies
	logger *zap.Logger
	now    func() time.Time
}

// New builds the HTTP handler
func New(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.HealthTimeout <= 0 {
		deps.HealthTimeout = 2 * time.Second
	}
	s := &server{deps: deps, logger: deps.Logger, now: time.Now}

	engine := gin.New()
	engine.Use(requestLogger(s.logger), recovery(s.logger), cors(deps.FrontendURL))

	engine.GET("/", s.banner)
	engine.GET("/api/health", s.health)

	authed := engine.Group("/api", authenticate(deps.Verifier))
	authed.GET("/me", s.me)

	c := deps.Services
	registerResource(authed, "/tasks", domain.KindTask, c.Tasks, s)
	registerResource(authed, "/notes", domain.KindNote, c.Notes, s)
	registerResource(authed, "/reminders", domain.KindReminder, c.Reminders, s)
	registerResource(authed, "/budget", domain.KindBudget, c.Budgets, s)
	registerResource(authed, "/study-sessions", domain.KindStudySession, c.StudySessions, s)

	authed.POST("/commands", s.runCommand)
	authed.GET("/analytics", s.analytics)

	ai := authed.Group("/ai")
	ai.POST("/study-plan", s.studyPlan)
	ai.POST("/summary", s.summary)
	ai.POST("/quiz", s.quiz)

	return engine
}
