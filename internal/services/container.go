package services

import (
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/repository"
	"studyflow/internal/validation"
)

// timeNow is the clock used by services; tests replace it.
var timeNow = time.Now

// NewServiceContainer wires a service per kind plus analytics over store.
// A nil validator uses the default limits.
func NewServiceContainer(store repository.Store, validator *validation.Validator) *ServiceContainer {
	clock := func() time.Time { return timeNow() }

	tasks := validation.NewTaskValidator(validator)
	notes := validation.NewNoteValidator(validator)
	reminders := validation.NewReminderValidator(validator)
	budgets := validation.NewBudgetValidator(validator)
	sessions := validation.NewStudySessionValidator(validator)

	return &ServiceContainer{
		Tasks: newResourceService(store, definition[domain.Task, domain.TaskFields]{
			kind:           domain.KindTask,
			collection:     repository.Scope.Tasks,
			base:           (*domain.Task).Base,
			build:          domain.NewTask,
			apply:          (*domain.Task).Apply,
			validateCreate: tasks.ValidateForCreation,
			validate:       tasks.Validate,
		}, clock),
		Notes: newResourceService(store, definition[domain.Note, domain.NoteFields]{
			kind:           domain.KindNote,
			collection:     repository.Scope.Notes,
			base:           (*domain.Note).Base,
			build:          domain.NewNote,
			apply:          (*domain.Note).Apply,
			validateCreate: notes.ValidateForCreation,
			validate:       notes.Validate,
		}, clock),
		Reminders: newResourceService(store, definition[domain.Reminder, domain.ReminderFields]{
			kind:           domain.KindReminder,
			collection:     repository.Scope.Reminders,
			base:           (*domain.Reminder).Base,
			build:          domain.NewReminder,
			apply:          (*domain.Reminder).Apply,
			validateCreate: reminders.ValidateForCreation,
			validate:       reminders.Validate,
		}, clock),
		Budgets: newResourceService(store, definition[domain.BudgetEntry, domain.BudgetFields]{
			kind:           domain.KindBudget,
			collection:     repository.Scope.Budgets,
			base:           (*domain.BudgetEntry).Base,
			build:          domain.NewBudgetEntry,
			apply:          (*domain.BudgetEntry).Apply,
			validateCreate: budgets.ValidateForCreation,
			validate:       budgets.Validate,
		}, clock),
		StudySessions: newResourceService(store, definition[domain.StudySession, domain.StudySessionFields]{
			kind:           domain.KindStudySession,
			collection:     repository.Scope.StudySessions,
			base:           (*domain.StudySession).Base,
			build:          domain.NewStudySession,
			apply:          (*domain.StudySession).Apply,
			validateCreate: sessions.ValidateForCreation,
			validate:       sessions.Validate,
		}, clock),
		Analytics: NewAnalyticsService(store, clock),
	}
}
