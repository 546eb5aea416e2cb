package services

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"studyflow/internal/domain"
	"studyflow/internal/errors"
	"studyflow/internal/repository"
)

const (
	trendDays   = 7
	trendMonths = 7
)

// analyticsServiceImpl implements AnalyticsService
type analyticsServiceImpl struct {
	store repository.Store
	now   func() time.Time
}

// NewAnalyticsService creates a new analytics service instance
func NewAnalyticsService(store repository.Store, clock func() time.Time) AnalyticsService {
	if clock == nil {
		clock = time.Now
	}
	return &analyticsServiceImpl{store: store, now: clock}
}

// snapshot is every record of one owner, read concurrently
type snapshot struct {
	tasks     []*domain.Task
	notes     []*domain.Note
	reminders []*domain.Reminder
	budgets   []*domain.BudgetEntry
	sessions  []*domain.StudySession
}

func (s *analyticsServiceImpl) load(ctx context.Context, scope repository.Scope) (*snapshot, error) {
	var snap snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.tasks, err = scope.Tasks().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.notes, err = scope.Notes().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.reminders, err = scope.Reminders().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.budgets, err = scope.Budgets().List(ctx)
		return err
	})
	g.Go(func() (err error) {
		snap.sessions, err = scope.StudySessions().List(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Summary computes the dashboard for owner. Days and months are taken in loc.
func (s *analyticsServiceImpl) Summary(ctx context.Context, owner domain.OwnerID, loc *time.Location) (*Summary, error) {
	if owner == "" {
		return nil, errors.NewAuthError("request has no owner identity", nil)
	}
	if loc == nil {
		loc = time.UTC
	}

	snap, err := s.load(ctx, s.store.ForOwner(owner))
	if err != nil {
		return nil, err
	}

	now := s.now().In(loc)
	summary := &Summary{
		TotalTasks:         len(snap.tasks),
		TotalNotes:         len(snap.notes),
		TotalBudgetEntries: len(snap.budgets),
		GeneratedAt:        now,
	}

	for _, t := range snap.tasks {
		if t.Completed {
			summary.CompletedTasks++
		}
	}
	if summary.TotalTasks > 0 {
		summary.TaskCompletionRate = int(round(float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100))
	}

	for _, r := range snap.reminders {
		if !r.Completed {
			summary.TotalReminders++
		}
	}

	var totalSeconds int64
	for _, session := range snap.sessions {
		totalSeconds += session.Duration
	}
	summary.TotalStudyHours = hours(totalSeconds)
	if len(snap.sessions) > 0 {
		summary.AverageStudyTime = hours(totalSeconds / int64(len(snap.sessions)))
	}

	summary.WeeklyProgress = weeklyProgress(snap.sessions, now)
	summary.ProductivityScore = productivityScore(summary.TaskCompletionRate, summary.WeeklyProgress)
	summary.BudgetAnalysis = budgetAnalysis(snap.budgets, now)

	return summary, nil
}

// weeklyProgress returns study hours per calendar day for the week ending on now
func weeklyProgress(sessions []*domain.StudySession, now time.Time) []float64 {
	loc := now.Location()
	today := startOfDay(now)

	seconds := make([]int64, trendDays)
	for _, session := range sessions {
		day := startOfDay(session.Date.In(loc))
		offset := int(today.Sub(day).Hours()/24 + 0.5)
		if offset < 0 || offset >= trendDays {
			continue
		}
		seconds[trendDays-1-offset] += session.Duration
	}

	progress := make([]float64, trendDays)
	for i, s := range seconds {
		progress[i] = hours(s)
	}
	return progress
}

// productivityScore weighs task completion (50), study consistency (30) and
// the number of active days (20)
func productivityScore(completionRate int, weekly []float64) int {
	taskScore := int(round(float64(completionRate) * 0.5))

	var total float64
	activeDays := 0
	for _, h := range weekly {
		total += h
		if h > 0 {
			activeDays++
		}
	}
	consistency := int(math.Min(30, round(total/trendDays*5)))
	activity := int(round(float64(activeDays) / trendDays * 20))

	score := taskScore + consistency + activity
	if score > 100 {
		return 100
	}
	return score
}

func budgetAnalysis(entries []*domain.BudgetEntry, now time.Time) BudgetAnalysis {
	month, year := int(now.Month()), now.Year()

	var analysis BudgetAnalysis
	byCategory := make(map[string]float64)
	var order []string

	for _, e := range entries {
		if !e.InPeriod(month, year) {
			continue
		}
		switch e.Type {
		case domain.EntryIncome:
			analysis.TotalBudget += e.Amount
		case domain.EntryExpense:
			analysis.TotalSpent += e.Amount
			if _, ok := byCategory[e.Category]; !ok {
				order = append(order, e.Category)
			}
			byCategory[e.Category] += e.Amount
		}
	}
	analysis.RemainingBudget = analysis.TotalBudget - analysis.TotalSpent

	analysis.CategorySpending = make([]CategorySpending, 0, len(order))
	for _, category := range order {
		cs := CategorySpending{Category: category, Amount: byCategory[category]}
		if analysis.TotalSpent > 0 {
			cs.Percentage = int(round(cs.Amount / analysis.TotalSpent * 100))
		}
		analysis.CategorySpending = append(analysis.CategorySpending, cs)
	}
	sort.SliceStable(analysis.CategorySpending, func(i, j int) bool {
		return analysis.CategorySpending[i].Amount > analysis.CategorySpending[j].Amount
	})

	analysis.MonthlyTrend = make([]float64, trendMonths)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	for i := 0; i < trendMonths; i++ {
		period := first.AddDate(0, i-(trendMonths-1), 0)
		for _, e := range entries {
			if e.Type == domain.EntryExpense && e.InPeriod(int(period.Month()), period.Year()) {
				analysis.MonthlyTrend[i] += e.Amount
			}
		}
	}

	return analysis
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// hours converts seconds to hours rounded to one decimal place
func hours(seconds int64) float64 {
	return round(float64(seconds)/3600*10) / 10
}

// round rounds half up, so 2.5 becomes 3 and -2.5 becomes -2
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}
