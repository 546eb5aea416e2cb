package sqlite

import (
	"strings"

	"studyflow/internal/domain"
)

// recordColumns are the leading columns of every resource table.
var recordColumns = []string{"id", "user_id", "created_at", "updated_at"}

// table describes how one entity kind maps onto its SQL table.
type table[T any] struct {
	name    string
	entity  string
	columns []string
	base    func(*T) *domain.Record
	values  func(*T) ([]interface{}, error)
	scan    func(Scanner) (*T, error)
}

func (t table[T]) selectColumns() string {
	return strings.Join(append(append([]string{}, recordColumns...), t.columns...), ", ")
}

func (t table[T]) listQuery() string {
	return "SELECT " + t.selectColumns() + " FROM " + t.name + " WHERE user_id = ? ORDER BY rowid ASC"
}

func (t table[T]) getQuery() string {
	return "SELECT " + t.selectColumns() + " FROM " + t.name + " WHERE id = ? AND user_id = ?"
}

func (t table[T]) insertQuery() string {
	n := len(recordColumns) + len(t.columns)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
	return "INSERT INTO " + t.name + " (" + t.selectColumns() + ") VALUES (" + placeholders + ")"
}

func (t table[T]) updateQuery() string {
	sets := make([]string, 0, len(t.columns)+1)
	sets = append(sets, "updated_at = ?")
	for _, c := range t.columns {
		sets = append(sets, c+" = ?")
	}
	return "UPDATE " + t.name + " SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?"
}

func (t table[T]) deleteQuery() string {
	return "DELETE FROM " + t.name + " WHERE id = ? AND user_id = ?"
}

var tasksTable = table[domain.Task]{
	name:    "tasks",
	entity:  domain.KindTask.Label(),
	columns: []string{"title", "description", "completed", "priority", "due_date", "category"},
	base:    (*domain.Task).Base,
	values: func(t *domain.Task) ([]interface{}, error) {
		return []interface{}{t.Title, t.Description, t.Completed, string(t.Priority), FormatTimePtrForDB(t.DueDate), t.Category}, nil
	},
	scan: ScanTask,
}

var notesTable = table[domain.Note]{
	name:    "notes",
	entity:  domain.KindNote.Label(),
	columns: []string{"title", "content", "tags", "subject"},
	base:    (*domain.Note).Base,
	values: func(n *domain.Note) ([]interface{}, error) {
		tags, err := FormatTagsForDB(n.Tags)
		if err != nil {
			return nil, err
		}
		return []interface{}{n.Title, n.Content, tags, n.Subject}, nil
	},
	scan: ScanNote,
}

var remindersTable = table[domain.Reminder]{
	name:    "reminders",
	entity:  domain.KindReminder.Label(),
	columns: []string{"title", "message", "date", "recurring", "recurring_type", "completed"},
	base:    (*domain.Reminder).Base,
	values: func(r *domain.Reminder) ([]interface{}, error) {
		return []interface{}{r.Title, r.Message, FormatTimeForDB(r.Date), r.Recurring, string(r.RecurringType), r.Completed}, nil
	},
	scan: ScanReminder,
}

var budgetsTable = table[domain.BudgetEntry]{
	name:    "budgets",
	entity:  domain.KindBudget.Label(),
	columns: []string{"category", "amount", "spent", "description", "month", "year", "type"},
	base:    (*domain.BudgetEntry).Base,
	values: func(b *domain.BudgetEntry) ([]interface{}, error) {
		return []interface{}{b.Category, b.Amount, b.Spent, b.Description, b.Month, b.Year, string(b.Type)}, nil
	},
	scan: ScanBudgetEntry,
}

var studySessionsTable = table[domain.StudySession]{
	name:    "study_sessions",
	entity:  domain.KindStudySession.Label(),
	columns: []string{"subject", "duration", "type", "date", "notes"},
	base:    (*domain.StudySession).Base,
	values: func(s *domain.StudySession) ([]interface{}, error) {
		return []interface{}{s.Subject, s.Duration, string(s.Type), FormatTimeForDB(s.Date), s.Notes}, nil
	},
	scan: ScanStudySession,
}
