package interpreter

import (
	"time"

	"studyflow/internal/domain"
)

const (
	defaultTaskTitle     = "Untitled Task"
	defaultReminderTitle = "Reminder"
	defaultCategory      = "General"
	defaultReminderTime  = "09:00"
)

// BuildTaskInput fills a task create request from model fields. Missing
// values fall back to: title "Untitled Task", description the title,
// priority medium, due now, category "General".
func BuildTaskInput(fields Fields, now time.Time) domain.TaskFields {
	title := fields.String("title")
	if title == "" {
		title = defaultTaskTitle
	}
	description := fields.String("description")
	if description == "" {
		description = title
	}
	priority := domain.Priority(fields.String("priority"))
	if !priority.IsValid() {
		priority = domain.PriorityMedium
	}
	category := fields.String("category")
	if category == "" {
		category = defaultCategory
	}

	due := now
	if d, ok := parseDate(fields.String("dueDate"), now.Location()); ok {
		due = d
	}

	completed := false
	return domain.TaskFields{
		Title:       &title,
		Description: &description,
		Completed:   &completed,
		Priority:    &priority,
		DueDate:     &due,
		Category:    &category,
	}
}

// BuildReminderInput fills a reminder create request. The time is taken from
// the user's own words when they contain one; date defaults to today and time
// to 09:00.
func BuildReminderInput(input string, fields Fields, now time.Time) domain.ReminderFields {
	loc := now.Location()

	title := fields.String("title")
	if title == "" {
		title = defaultReminderTitle
	}

	day, ok := parseDate(fields.String("date"), loc)
	if !ok {
		day = startOfDay(now)
	}

	clockTime := ResolveTime(input, fields.String("time"))
	hm, err := time.Parse("15:04", clockTime)
	if err != nil {
		hm, _ = time.Parse("15:04", defaultReminderTime)
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), hm.Hour(), hm.Minute(), 0, 0, loc)

	message := title
	recurring, completed := false, false
	return domain.ReminderFields{
		Title:     &title,
		Message:   &message,
		Date:      &at,
		Recurring: &recurring,
		Completed: &completed,
	}
}

// BuildBudgetInput fills a budget entry create request. A non-numeric amount
// becomes 0 and anything but "income" is an expense.
func BuildBudgetInput(fields Fields, now time.Time) domain.BudgetFields {
	amount, _ := fields.Number("amount")

	category := fields.String("category")
	if category == "" {
		category = defaultCategory
	}
	description := fields.String("description")

	month := int(now.Month())
	if m, ok := fields.Number("month"); ok && m >= 1 && m <= 12 {
		month = int(m)
	}
	year := now.Year()
	if y, ok := fields.Number("year"); ok && y > 0 {
		year = int(y)
	}

	entryType := domain.EntryExpense
	if domain.EntryType(fields.String("type")) == domain.EntryIncome {
		entryType = domain.EntryIncome
	}

	spent := 0.0
	return domain.BudgetFields{
		Category:    &category,
		Amount:      &amount,
		Spent:       &spent,
		Description: &description,
		Month:       &month,
		Year:        &year,
		Type:        &entryType,
	}
}

// parseDate reads a YYYY-MM-DD date as local midnight. Full RFC 3339
// timestamps are accepted too.
func parseDate(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
