package sqlite

import (
	"database/sql"
	"fmt"

	"studyflow/internal/domain"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// recordRow holds the raw columns shared by every resource table.
type recordRow struct {
	id        string
	owner     string
	createdAt string
	updatedAt string
}

func (r *recordRow) dest() []interface{} {
	return []interface{}{&r.id, &r.owner, &r.createdAt, &r.updatedAt}
}

func (r *recordRow) into(rec *domain.Record) error {
	created, err := ParseTimeFromDB(r.createdAt)
	if err != nil {
		return fmt.Errorf("created_at: %w", err)
	}
	updated, err := ParseTimeFromDB(r.updatedAt)
	if err != nil {
		return fmt.Errorf("updated_at: %w", err)
	}
	rec.ID = r.id
	rec.OwnerID = domain.OwnerID(r.owner)
	rec.CreatedAt = created
	rec.UpdatedAt = updated
	return nil
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*domain.Task, error) {
	task := &domain.Task{}
	var rec recordRow
	var priority string
	var dueDate sql.NullString

	dest := append(rec.dest(), &task.Title, &task.Description, &task.Completed, &priority, &dueDate, &task.Category)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	if err := rec.into(&task.Record); err != nil {
		return nil, err
	}

	due, err := ParseNullTimeFromDB(dueDate)
	if err != nil {
		return nil, fmt.Errorf("due_date: %w", err)
	}
	task.DueDate = due
	task.Priority = domain.Priority(priority)
	return task, nil
}

// ScanNote scans a single note from a database row
func ScanNote(scanner Scanner) (*domain.Note, error) {
	note := &domain.Note{}
	var rec recordRow
	var tags string

	dest := append(rec.dest(), &note.Title, &note.Content, &tags, &note.Subject)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	if err := rec.into(&note.Record); err != nil {
		return nil, err
	}

	parsed, err := ParseTagsFromDB(tags)
	if err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}
	note.Tags = parsed
	return note, nil
}

// ScanReminder scans a single reminder from a database row
func ScanReminder(scanner Scanner) (*domain.Reminder, error) {
	reminder := &domain.Reminder{}
	var rec recordRow
	var date, recurringType string

	dest := append(rec.dest(), &reminder.Title, &reminder.Message, &date, &reminder.Recurring, &recurringType, &reminder.Completed)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	if err := rec.into(&reminder.Record); err != nil {
		return nil, err
	}

	at, err := ParseTimeFromDB(date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	reminder.Date = at
	reminder.RecurringType = domain.Recurrence(recurringType)
	return reminder, nil
}

// ScanBudgetEntry scans a single budget entry from a database row
func ScanBudgetEntry(scanner Scanner) (*domain.BudgetEntry, error) {
	entry := &domain.BudgetEntry{}
	var rec recordRow
	var entryType string

	dest := append(rec.dest(), &entry.Category, &entry.Amount, &entry.Spent, &entry.Description, &entry.Month, &entry.Year, &entryType)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	if err := rec.into(&entry.Record); err != nil {
		return nil, err
	}

	entry.Type = domain.EntryType(entryType)
	return entry, nil
}

// ScanStudySession scans a single study session from a database row
func ScanStudySession(scanner Scanner) (*domain.StudySession, error) {
	session := &domain.StudySession{}
	var rec recordRow
	var sessionType, date string

	dest := append(rec.dest(), &session.Subject, &session.Duration, &sessionType, &date, &session.Notes)
	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	if err := rec.into(&session.Record); err != nil {
		return nil, err
	}

	at, err := ParseTimeFromDB(date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	session.Date = at
	session.Type = domain.SessionType(sessionType)
	return session, nil
}

// ScanAll scans every remaining row with scan. An empty result is a non-nil
// empty slice so callers can encode it as [] rather than null.
func ScanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	results := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
