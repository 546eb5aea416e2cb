package domain

import (
	"strings"
	"time"
)

// Recurrence is the repeat cadence of a reminder.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// IsValid reports whether r is a known cadence.
func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Reminder is a dated notification with optional recurrence.
type Reminder struct {
	Record        `bson:",inline"`
	Title         string     `json:"title" bson:"title"`
	Message       string     `json:"message" bson:"message"`
	Date          time.Time  `json:"date" bson:"date"`
	Recurring     bool       `json:"recurring" bson:"recurring"`
	RecurringType Recurrence `json:"recurringType,omitempty" bson:"recurringType,omitempty"`
	Completed     bool       `json:"completed" bson:"completed"`
}

// ReminderFields carries caller supplied reminder fields.
type ReminderFields struct {
	Title         *string     `json:"title"`
	Message       *string     `json:"message"`
	Date          *time.Time  `json:"date"`
	Recurring     *bool       `json:"recurring"`
	RecurringType *Recurrence `json:"recurringType"`
	Completed     *bool       `json:"completed"`
}

// NewReminder builds a reminder from create fields.
func NewReminder(f ReminderFields) Reminder {
	var r Reminder
	r.Apply(f)
	return r
}

// Apply replaces every field present in f.
func (r *Reminder) Apply(f ReminderFields) {
	if f.Title != nil {
		r.Title = strings.TrimSpace(*f.Title)
	}
	if f.Message != nil {
		r.Message = *f.Message
	}
	if f.Date != nil {
		r.Date = *f.Date
	}
	if f.Recurring != nil {
		r.Recurring = *f.Recurring
	}
	if f.RecurringType != nil {
		r.RecurringType = *f.RecurringType
	}
	if f.Completed != nil {
		r.Completed = *f.Completed
	}
}

// IsDue reports whether an open reminder has reached its instant.
func (r Reminder) IsDue(now time.Time) bool {
	return !r.Completed && !r.Date.After(now)
}
