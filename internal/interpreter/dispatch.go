package interpreter

import (
	"context"
	"time"

	"go.uber.org/zap"

	"studyflow/internal/domain"
	"studyflow/internal/services"
)

// Outcome reports what a dispatched command did
type Outcome struct {
	Kind     Kind                `json:"kind"`
	Action   Action              `json:"action"`
	Page     *int                `json:"page,omitempty"`
	Task     *domain.Task        `json:"task,omitempty"`
	Reminder *domain.Reminder    `json:"reminder,omitempty"`
	Budget   *domain.BudgetEntry `json:"budget,omitempty"`
}

// Dispatcher applies commands through the resource services
type Dispatcher struct {
	tasks     services.TaskService
	reminders services.ReminderService
	budgets   services.BudgetService
	logger    *zap.Logger
}

// NewDispatcher creates a dispatcher over the container's services
func NewDispatcher(container *services.ServiceContainer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		tasks:     container.Tasks,
		reminders: container.Reminders,
		budgets:   container.Budgets,
		logger:    logger,
	}
}

// Dispatch performs the side effect of cmd for owner. now is the caller's
// local time. Navigation and unknown commands touch no state.
func (d *Dispatcher) Dispatch(ctx context.Context, owner domain.OwnerID, cmd Command, now time.Time) (*Outcome, error) {
	out := &Outcome{Kind: cmd.Kind, Action: cmd.Action}

	switch cmd.Kind {
	case KindTask:
		task, err := d.tasks.Create(ctx, owner, BuildTaskInput(cmd.Fields, now))
		if err != nil {
			return nil, err
		}
		out.Task = task

	case KindReminder:
		reminder, err := d.reminders.Create(ctx, owner, BuildReminderInput(cmd.Input, cmd.Fields, now))
		if err != nil {
			return nil, err
		}
		out.Reminder = reminder

	case KindBudget:
		entry, err := d.budgets.Create(ctx, owner, BuildBudgetInput(cmd.Fields, now))
		if err != nil {
			return nil, err
		}
		out.Budget = entry

	case KindNavigation:
		// The page is passed through as given; the client owns its range.
		if n, ok := cmd.Fields.Number("page"); ok {
			page := int(n)
			out.Page = &page
		}

	default:
		out.Kind = KindUnknown
	}

	d.logger.Info("command dispatched",
		zap.String("owner", owner.String()),
		zap.String("kind", string(out.Kind)))
	return out, nil
}
