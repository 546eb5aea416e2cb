// Package sqlite is the embedded document store backend. Each entity kind
// lives in its own table and every statement filters on user_id.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/errors"
	"studyflow/internal/repository"
	"studyflow/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Options tunes statement deadlines.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions returns the deadlines used when none are configured.
func DefaultOptions() Options {
	return Options{
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// Store implements repository.Store on SQLite
type Store struct {
	db   *sql.DB
	opts Options
}

var _ repository.Store = (*Store)(nil)

// New creates a new SQLite store with default options
func New(dbPath string) (*Store, error) {
	return NewWithOptions(context.Background(), dbPath, DefaultOptions())
}

// NewWithOptions opens the database at dbPath and applies pending migrations
func NewWithOptions(ctx context.Context, dbPath string, opts Options) (*Store, error) {
	defaults := DefaultOptions()
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = defaults.QueryTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaults.WriteTimeout
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// An in-memory database exists per connection, and SQLite serializes
	// writers anyway.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &Store{db: db, opts: opts}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database answers
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// ForOwner returns the collections visible to owner
func (s *Store) ForOwner(owner domain.OwnerID) repository.Scope {
	return &scope{store: s, owner: owner}
}

type scope struct {
	store *Store
	owner domain.OwnerID
}

func (sc *scope) Owner() domain.OwnerID { return sc.owner }

func (sc *scope) Tasks() repository.Collection[domain.Task] {
	return newCollection(sc, tasksTable)
}

func (sc *scope) Notes() repository.Collection[domain.Note] {
	return newCollection(sc, notesTable)
}

func (sc *scope) Reminders() repository.Collection[domain.Reminder] {
	return newCollection(sc, remindersTable)
}

func (sc *scope) Budgets() repository.Collection[domain.BudgetEntry] {
	return newCollection(sc, budgetsTable)
}

func (sc *scope) StudySessions() repository.Collection[domain.StudySession] {
	return newCollection(sc, studySessionsTable)
}

// collection runs one table's statements for one owner.
type collection[T any] struct {
	db    *sql.DB
	opts  Options
	owner domain.OwnerID
	table table[T]
}

func newCollection[T any](sc *scope, t table[T]) *collection[T] {
	return &collection[T]{db: sc.store.db, opts: sc.store.opts, owner: sc.owner, table: t}
}

func (c *collection[T]) List(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.QueryTimeout)
	defer cancel()

	return QueryMultiple(ctx, c.db, c.table.listQuery(), c.table.scan, c.table.entity, c.owner.String())
}

func (c *collection[T]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.QueryTimeout)
	defer cancel()

	return QuerySingle(ctx, c.db, c.table.getQuery(), c.table.scan, c.table.entity, id, id, c.owner.String())
}

func (c *collection[T]) Create(ctx context.Context, item *T) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.WriteTimeout)
	defer cancel()

	rec := c.table.base(item)
	rec.OwnerID = c.owner

	values, err := c.table.values(item)
	if err != nil {
		return HandleDatabaseError("encode "+c.table.entity, err)
	}
	args := append([]interface{}{rec.ID, rec.OwnerID.String(), FormatTimeForDB(rec.CreatedAt), FormatTimeForDB(rec.UpdatedAt)}, values...)
	return Execute(ctx, c.db, c.table.insertQuery(), args...)
}

func (c *collection[T]) Update(ctx context.Context, item *T) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.WriteTimeout)
	defer cancel()

	rec := c.table.base(item)
	values, err := c.table.values(item)
	if err != nil {
		return HandleDatabaseError("encode "+c.table.entity, err)
	}
	args := append([]interface{}{FormatTimeForDB(rec.UpdatedAt)}, values...)
	args = append(args, rec.ID, c.owner.String())
	return ExecuteWithRowsAffected(ctx, c.db, c.table.updateQuery(), c.table.entity, rec.ID, args...)
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.WriteTimeout)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, c.db, c.table.deleteQuery(), c.table.entity, id, id, c.owner.String())
}
