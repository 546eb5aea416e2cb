package api

import (
	"context"
	"net/http"
	"strings"
	"time"
	_ "time/tzdata" // clients name arbitrary IANA zones

	"github.com/gin-gonic/gin"

	"studyflow/internal/errors"
	"studyflow/internal/interpreter"
)

func (s *server) banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "StudyFlow backend is running!",
		"timestamp":   s.now().UTC().Format(time.RFC3339),
		"environment": s.deps.Environment,
	})
}

// health pings the store; the model is not probed
func (s *server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.deps.HealthTimeout)
	defer cancel()

	status, database, code := "healthy", "connected", http.StatusOK
	if s.deps.Store == nil || s.deps.Store.Ping(ctx) != nil {
		status, database, code = "degraded", "disconnected", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": s.now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}

func (s *server) me(c *gin.Context) {
	c.JSON(http.StatusOK, identityFrom(c))
}

// location resolves an IANA zone name, falling back to the configured zone
func (s *server) location(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.deps.Location, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.NewInvalidInputError("timezone", name, "unknown time zone")
	}
	return loc, nil
}

type commandRequest struct {
	Text     string `json:"text"`
	Timezone string `json:"timezone"`
}

func (s *server) runCommand(c *gin.Context) {
	var req commandRequest
	if !s.bind(c, &req) {
		return
	}
	loc, err := s.location(req.Timezone)
	if err != nil {
		s.fail(c, err)
		return
	}

	out, err := s.deps.Runner.Run(c.Request.Context(), ownerFrom(c), req.Text, loc)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *server) analytics(c *gin.Context) {
	loc, err := s.location(c.Query("timezone"))
	if err != nil {
		s.fail(c, err)
		return
	}

	summary, err := s.deps.Services.Analytics.Summary(c.Request.Context(), ownerFrom(c), loc)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

type studyPlanRequest struct {
	Subject       string   `json:"subject"`
	Goals         []string `json:"goals"`
	TimeAvailable int      `json:"timeAvailable"`
}

func (s *server) studyPlan(c *gin.Context) {
	var req studyPlanRequest
	if !s.bind(c, &req) {
		return
	}
	plan, err := s.deps.Assistant.StudyPlan(c.Request.Context(), req.Subject, req.Goals, req.TimeAvailable)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

type summaryRequest struct {
	Notes string `json:"notes"`
}

func (s *server) summary(c *gin.Context) {
	var req summaryRequest
	if !s.bind(c, &req) {
		return
	}
	text, err := s.deps.Assistant.Summarize(c.Request.Context(), req.Notes)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": text})
}

type quizRequest struct {
	Topic      string                 `json:"topic"`
	Difficulty interpreter.Difficulty `json:"difficulty"`
}

func (s *server) quiz(c *gin.Context) {
	var req quizRequest
	if !s.bind(c, &req) {
		return
	}
	text, err := s.deps.Assistant.Quiz(c.Request.Context(), req.Topic, req.Difficulty)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": text})
}
