package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	entries := []*BudgetEntry{
		{Type: EntryIncome, Amount: 500},
		{Type: EntryExpense, Amount: 15},
		{Type: EntryExpense, Amount: 35.5},
	}

	assert.InDelta(t, 449.5, Balance(entries), 0.0001)
	assert.Zero(t, Balance(nil))
}

func TestBudgetEntry_InPeriod(t *testing.T) {
	entry := BudgetEntry{Month: 3, Year: 2025}
	assert.True(t, entry.InPeriod(3, 2025))
	assert.False(t, entry.InPeriod(4, 2025))
	assert.False(t, entry.InPeriod(3, 2024))
}

func TestNewNote_Tags(t *testing.T) {
	empty := NewNote(NoteFields{Title: strPtr("t"), Content: strPtr("c")})
	assert.NotNil(t, empty.Tags)
	assert.Empty(t, empty.Tags)

	tags := []string{"exam", " exam ", "", "physics"}
	note := NewNote(NoteFields{Title: strPtr("t"), Content: strPtr("c"), Tags: &tags})
	assert.Equal(t, []string{"exam", "physics"}, note.Tags)
	assert.True(t, note.HasTag("EXAM"))
	assert.False(t, note.HasTag("math"))
}

func TestReminder_IsDue(t *testing.T) {
	now := time.Date(2025, 3, 10, 19, 0, 0, 0, time.UTC)

	assert.True(t, Reminder{Date: now}.IsDue(now))
	assert.False(t, Reminder{Date: now.Add(time.Minute)}.IsDue(now))
	assert.False(t, Reminder{Date: now, Completed: true}.IsDue(now))
}

func TestStudySession_Elapsed(t *testing.T) {
	s := StudySession{Duration: 1500}
	assert.Equal(t, 25*time.Minute, s.Elapsed())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, RecurrenceWeekly.IsValid())
	assert.False(t, Recurrence("yearly").IsValid())
	assert.True(t, EntryIncome.IsValid())
	assert.False(t, EntryType("transfer").IsValid())
	assert.True(t, SessionPomodoro.IsValid())
	assert.False(t, SessionType("nap").IsValid())
}

func TestTask_JSONShape(t *testing.T) {
	task := NewTask(TaskFields{Title: strPtr("Essay")})
	task.Stamp("t-1", "owner-1", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	raw, err := json.Marshal(task)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "t-1", decoded["id"])
	assert.Equal(t, "owner-1", decoded["userId"])
	assert.Equal(t, "medium", decoded["priority"])
	assert.NotContains(t, decoded, "Record")
	assert.NotContains(t, decoded, "dueDate")
}

func TestKind_Label(t *testing.T) {
	assert.Equal(t, "Task", KindTask.Label())
	assert.Equal(t, "Budget entry", KindBudget.Label())
	assert.Len(t, Kinds, 5)
}
