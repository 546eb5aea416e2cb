package domain

import (
	"strings"
	"time"
)

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a to-do item in the domain model.
type Task struct {
	Record      `bson:",inline"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Completed   bool       `json:"completed" bson:"completed"`
	Priority    Priority   `json:"priority" bson:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Category    string     `json:"category,omitempty" bson:"category,omitempty"`
}

// TaskFields carries the caller supplied fields of a task. A nil field was
// not supplied. The same shape serves create and partial update.
type TaskFields struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Completed   *bool      `json:"completed"`
	Priority    *Priority  `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Category    *string    `json:"category"`
}

// NewTask builds a task from create fields, applying the schema defaults:
// description falls back to the title, priority to medium.
func NewTask(f TaskFields) Task {
	t := Task{Priority: PriorityMedium}
	t.Apply(f)
	if strings.TrimSpace(t.Description) == "" {
		t.Description = t.Title
	}
	return t
}

// Apply replaces every field present in f.
func (t *Task) Apply(f TaskFields) {
	if f.Title != nil {
		t.Title = strings.TrimSpace(*f.Title)
	}
	if f.Description != nil {
		t.Description = *f.Description
	}
	if f.Completed != nil {
		t.Completed = *f.Completed
	}
	if f.Priority != nil {
		t.Priority = *f.Priority
	}
	if f.DueDate != nil {
		due := *f.DueDate
		t.DueDate = &due
	}
	if f.Category != nil {
		t.Category = *f.Category
	}
}

// IsOverdue reports whether an open task is past its due date.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
