package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyflow/internal/domain"
	"studyflow/internal/errors"
	"studyflow/internal/repository/sqlite"
)

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

const (
	alice domain.OwnerID = "alice"
	bob   domain.OwnerID = "bob"
)

func setupContainer(t *testing.T) *ServiceContainer {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	original := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = original })

	return NewServiceContainer(store, nil)
}

func ptr[T any](v T) *T { return &v }

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name           string
		fields         domain.TaskFields
		expected       func(t *testing.T, task *domain.Task)
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:   "should apply defaults for title only",
			fields: domain.TaskFields{Title: ptr("Read chapter 4")},
			expected: func(t *testing.T, task *domain.Task) {
				assert.Equal(t, "Read chapter 4", task.Description)
				assert.Equal(t, domain.PriorityMedium, task.Priority)
				assert.False(t, task.Completed)
			},
		},
		{
			name: "should keep supplied fields",
			fields: domain.TaskFields{
				Title:       ptr("Lab report"),
				Description: ptr("Physics lab"),
				Priority:    ptr(domain.PriorityHigh),
				DueDate:     ptr(fixedNow.AddDate(0, 0, 2)),
				Category:    ptr("Science"),
			},
			expected: func(t *testing.T, task *domain.Task) {
				assert.Equal(t, "Physics lab", task.Description)
				assert.Equal(t, domain.PriorityHigh, task.Priority)
				require.NotNil(t, task.DueDate)
				assert.True(t, task.DueDate.Equal(fixedNow.AddDate(0, 0, 2)))
				assert.Equal(t, "Science", task.Category)
			},
		},
		{
			name:   "should return validation error for missing title",
			fields: domain.TaskFields{Description: ptr("no title")},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "title")
			},
		},
		{
			name:   "should return validation error for whitespace-only title",
			fields: domain.TaskFields{Title: ptr("   ")},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:   "should return validation error for very long title",
			fields: domain.TaskFields{Title: ptr(strings.Repeat("a", 300))},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:   "should return validation error for unknown priority",
			fields: domain.TaskFields{Title: ptr("Essay"), Priority: ptr(domain.Priority("urgent"))},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "priority")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			container := setupContainer(t)
			ctx := context.Background()

			// Act
			result, err := container.Tasks.Create(ctx, alice, tt.fields)

			// Assert
			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEmpty(t, result.ID)
			assert.Equal(t, alice, result.OwnerID)
			assert.True(t, result.CreatedAt.Equal(fixedNow))
			assert.True(t, result.UpdatedAt.Equal(fixedNow))
			tt.expected(t, result)

			listed, err := container.Tasks.List(ctx, alice)
			require.NoError(t, err)
			require.Len(t, listed, 1)
			assert.Equal(t, result.ID, listed[0].ID)
		})
	}
}

func TestTaskService_ListInsertionOrder(t *testing.T) {
	container := setupContainer(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := container.Tasks.Create(ctx, alice, domain.TaskFields{Title: ptr(title)})
		require.NoError(t, err)
	}

	tasks, err := container.Tasks.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)

	empty, err := container.Tasks.List(ctx, bob)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTaskService_Update(t *testing.T) {
	container := setupContainer(t)
	ctx := context.Background()

	created, err := container.Tasks.Create(ctx, alice, domain.TaskFields{Title: ptr("Revise"), Category: ptr("Math")})
	require.NoError(t, err)

	later := fixedNow.Add(time.Hour)
	timeNow = func() time.Time { return later }

	tests := []struct {
		name           string
		owner          domain.OwnerID
		id             string
		patch          domain.TaskFields
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:  "should apply partial patch",
			owner: alice,
			id:    created.ID,
			patch: domain.TaskFields{Completed: ptr(true)},
		},
		{
			name:  "should reject patch that blanks the title",
			owner: alice,
			id:    created.ID,
			patch: domain.TaskFields{Title: ptr("")},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:  "should return not found for another owner's task",
			owner: bob,
			id:    created.ID,
			patch: domain.TaskFields{Completed: ptr(true)},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
			},
		},
		{
			name:  "should return not found for unknown id",
			owner: alice,
			id:    "missing",
			patch: domain.TaskFields{Completed: ptr(true)},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
				assert.Contains(t, err.Error(), "Task not found")
			},
		},
		{
			name:  "should return not found for empty id",
			owner: alice,
			id:    "",
			patch: domain.TaskFields{Completed: ptr(true)},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := container.Tasks.Update(ctx, tt.owner, tt.id, tt.patch)

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.True(t, result.Completed)
			assert.Equal(t, "Revise", result.Title)
			assert.Equal(t, "Math", result.Category)
			assert.True(t, result.CreatedAt.Equal(fixedNow))
			assert.True(t, result.UpdatedAt.Equal(later))
		})
	}

	stored, err := container.Tasks.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Revise", stored[0].Title)
	assert.True(t, stored[0].Completed)
}

func TestTaskService_Delete(t *testing.T) {
	container := setupContainer(t)
	ctx := context.Background()

	created, err := container.Tasks.Create(ctx, alice, domain.TaskFields{Title: ptr("Throwaway")})
	require.NoError(t, err)

	err = container.Tasks.Delete(ctx, bob, created.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	require.NoError(t, container.Tasks.Delete(ctx, alice, created.ID))

	err = container.Tasks.Delete(ctx, alice, created.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	tasks, err := container.Tasks.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestResourceService_RequiresOwner(t *testing.T) {
	container := setupContainer(t)
	ctx := context.Background()

	_, err := container.Notes.List(ctx, "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAuth))

	_, err = container.Reminders.Create(ctx, "", domain.ReminderFields{})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAuth))

	err = container.Budgets.Delete(ctx, "", "id")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAuth))
}

func TestNoteService_Create(t *testing.T) {
	container := setupContainer(t)
	ctx := context.Background()

	note, err := container.Notes.Create(ctx, alice, domain.NoteFields{
		Title:   ptr("Cells"),
		Content: ptr("Mitochondria"),
	})
	require.NoError(t, err)
	assert.NotNil(t, note.Tags)
	assert.Empty(t, note.Tags)

	tagged, err := container.Notes.Update(ctx, alice, note.ID, domain.NoteFields{Tags: ptr([]string{"bio", "bio", "exam"})})
	require.NoError(t, err)
	assert.Equal(t, []string{"bio", "exam"}, tagged.Tags)

	_, err = container.Notes.Create(ctx, alice, domain.NoteFields{Title: ptr("No content")})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), "content")
}

func TestReminderService_Create(t *testing.T) {
	container := setupContainer(t)
	ctx := context.Background()

	date := time.Date(2026, 3, 16, 19, 0, 0, 0, time.UTC)
	reminder, err := container.Reminders.Create(ctx, alice, domain.ReminderFields{
		Title:   ptr("Call mom"),
		Message: ptr("Call mom"),
		Date:    &date,
	})
	require.NoError(t, err)
	assert.False(t, reminder.Recurring)
	assert.True(t, reminder.Date.Equal(date))

	_, err = container.Reminders.Create(ctx, alice, domain.ReminderFields{
		Title:         ptr("Gym"),
		Message:       ptr("Gym"),
		Date:          &date,
		Recurring:     ptr(true),
		RecurringType: ptr(domain.Recurrence("hourly")),
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	_, err = container.Reminders.Create(ctx, alice, domain.ReminderFields{Title: ptr("No date"), Message: ptr("x")})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), "date")
}

func TestBudgetService_Create(t *testing.T) {
	container := setupContainer(t)
	ctx := context.Background()

	entry, err := container.Budgets.Create(ctx, alice, domain.BudgetFields{
		Category: ptr("Food"),
		Amount:   ptr(15.0),
		Month:    ptr(3),
		Year:     ptr(2026),
		Type:     ptr(domain.EntryExpense),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, entry.Spent)
	assert.Equal(t, 15.0, entry.Amount)

	tests := []struct {
		name   string
		fields domain.BudgetFields
		field  string
	}{
		{
			name:   "missing amount",
			fields: domain.BudgetFields{Category: ptr("Food"), Month: ptr(3), Year: ptr(2026), Type: ptr(domain.EntryExpense)},
			field:  "amount",
		},
		{
			name:   "month out of range",
			fields: domain.BudgetFields{Category: ptr("Food"), Amount: ptr(1.0), Month: ptr(13), Year: ptr(2026), Type: ptr(domain.EntryExpense)},
			field:  "month",
		},
		{
			name:   "negative amount",
			fields: domain.BudgetFields{Category: ptr("Food"), Amount: ptr(-1.0), Month: ptr(3), Year: ptr(2026), Type: ptr(domain.EntryExpense)},
			field:  "amount",
		},
		{
			name:   "unknown type",
			fields: domain.BudgetFields{Category: ptr("Food"), Amount: ptr(1.0), Month: ptr(3), Year: ptr(2026), Type: ptr(domain.EntryType("loan"))},
			field:  "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := container.Budgets.Create(ctx, alice, tt.fields)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestStudySessionService_Create(t *testing.T) {
	container := setupContainer(t)
	ctx := context.Background()

	session, err := container.StudySessions.Create(ctx, alice, domain.StudySessionFields{
		Subject:  ptr("Chemistry"),
		Duration: ptr(int64(1500)),
		Type:     ptr(domain.SessionPomodoro),
		Date:     ptr(fixedNow),
	})
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, session.Elapsed())

	_, err = container.StudySessions.Create(ctx, alice, domain.StudySessionFields{
		Subject:  ptr("Chemistry"),
		Duration: ptr(int64(-5)),
		Type:     ptr(domain.SessionStudy),
		Date:     ptr(fixedNow),
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	assert.Contains(t, err.Error(), "duration")
}
