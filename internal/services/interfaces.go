package services

import (
	"context"
	"time"

	"studyflow/internal/domain"
)

// ResourceService is the owner-scoped lifecycle of one entity kind.
// Every method acts only on records belonging to owner; touching another
// owner's record is indistinguishable from touching a missing one.
type ResourceService[T any, F any] interface {
	// List returns the owner's records in insertion order
	List(ctx context.Context, owner domain.OwnerID) ([]*T, error)
	// Create validates fields, applies defaults and persists a new record
	Create(ctx context.Context, owner domain.OwnerID, fields F) (*T, error)
	// Update applies a partial patch to an existing record
	Update(ctx context.Context, owner domain.OwnerID, id string, patch F) (*T, error)
	Delete(ctx context.Context, owner domain.OwnerID, id string) error
}

// Per-kind service types.
type (
	TaskService         = ResourceService[domain.Task, domain.TaskFields]
	NoteService         = ResourceService[domain.Note, domain.NoteFields]
	ReminderService     = ResourceService[domain.Reminder, domain.ReminderFields]
	BudgetService       = ResourceService[domain.BudgetEntry, domain.BudgetFields]
	StudySessionService = ResourceService[domain.StudySession, domain.StudySessionFields]
)

// CategorySpending is one expense category's share of the month
type CategorySpending struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// BudgetAnalysis summarizes the current month's budget
type BudgetAnalysis struct {
	TotalBudget      float64            `json:"totalBudget"`
	TotalSpent       float64            `json:"totalSpent"`
	RemainingBudget  float64            `json:"remainingBudget"`
	CategorySpending []CategorySpending `json:"categorySpending"`
	MonthlyTrend     []float64          `json:"monthlyTrend"` // expenses for the last 7 months, oldest first
}

// Summary is the dashboard view over all of an owner's records
type Summary struct {
	TotalTasks         int            `json:"totalTasks"`
	CompletedTasks     int            `json:"completedTasks"`
	TaskCompletionRate int            `json:"taskCompletionRate"`
	TotalStudyHours    float64        `json:"totalStudyHours"`
	AverageStudyTime   float64        `json:"averageStudyTime"`
	WeeklyProgress     []float64      `json:"weeklyProgress"` // study hours for the last 7 days, oldest first
	ProductivityScore  int            `json:"productivityScore"`
	TotalNotes         int            `json:"totalNotes"`
	TotalReminders     int            `json:"totalReminders"` // open reminders only
	TotalBudgetEntries int            `json:"totalBudgetEntries"`
	BudgetAnalysis     BudgetAnalysis `json:"budgetAnalysis"`
	GeneratedAt        time.Time      `json:"generatedAt"`
}

// AnalyticsService aggregates an owner's records for the dashboard
type AnalyticsService interface {
	// Summary computes the dashboard; loc defines calendar days and months
	Summary(ctx context.Context, owner domain.OwnerID, loc *time.Location) (*Summary, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Tasks         TaskService
	Notes         NoteService
	Reminders     ReminderService
	Budgets       BudgetService
	StudySessions StudySessionService
	Analytics     AnalyticsService
}
