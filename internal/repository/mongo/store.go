// Package mongo is the MongoDB document store backend. Collection names and
// field names match the documents existing deployments already hold.
package mongo

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"studyflow/internal/domain"
	"studyflow/internal/errors"
	"studyflow/internal/repository"
)

// Collection names per kind.
const (
	TasksCollection         = "tasks"
	NotesCollection         = "notes"
	RemindersCollection     = "reminders"
	BudgetsCollection       = "budgets"
	StudySessionsCollection = "studysessions"
)

var allCollections = []string{TasksCollection, NotesCollection, RemindersCollection, BudgetsCollection, StudySessionsCollection}

// Options tunes operation deadlines.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// Store implements repository.Store on MongoDB
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	opts   Options
}

var _ repository.Store = (*Store)(nil)

// Connect dials uri, verifies the server answers, and ensures the owner
// index exists on every collection.
func Connect(ctx context.Context, uri, database string, opts Options) (*Store, error) {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 10 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.NewStoreUnavailableError(err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, errors.NewStoreUnavailableError(err)
	}

	s := &Store{client: client, db: client.Database(database), opts: opts}
	if err := s.ensureIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	model := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}}}
	for _, name := range allCollections {
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return errors.NewDatabaseError(fmt.Sprintf("create index on %s", name), err)
		}
	}
	return nil
}

// Ping checks that the primary answers
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.NewStoreUnavailableError(err)
	}
	return nil
}

// Close disconnects the client
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.WriteTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
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
	return newCollection(sc, TasksCollection, domain.KindTask, (*domain.Task).Base)
}

func (sc *scope) Notes() repository.Collection[domain.Note] {
	return newCollection(sc, NotesCollection, domain.KindNote, (*domain.Note).Base)
}

func (sc *scope) Reminders() repository.Collection[domain.Reminder] {
	return newCollection(sc, RemindersCollection, domain.KindReminder, (*domain.Reminder).Base)
}

func (sc *scope) Budgets() repository.Collection[domain.BudgetEntry] {
	return newCollection(sc, BudgetsCollection, domain.KindBudget, (*domain.BudgetEntry).Base)
}

func (sc *scope) StudySessions() repository.Collection[domain.StudySession] {
	return newCollection(sc, StudySessionsCollection, domain.KindStudySession, (*domain.StudySession).Base)
}

type collection[T any] struct {
	coll   *mongo.Collection
	opts   Options
	owner  domain.OwnerID
	entity string
	base   func(*T) *domain.Record
}

func newCollection[T any](sc *scope, name string, kind domain.Kind, base func(*T) *domain.Record) *collection[T] {
	return &collection[T]{
		coll:   sc.store.db.Collection(name),
		opts:   sc.store.opts,
		owner:  sc.owner,
		entity: kind.Label(),
		base:   base,
	}
}

// owned is the filter every operation starts from.
func (c *collection[T]) owned(id string) bson.D {
	filter := bson.D{{Key: "userId", Value: c.owner}}
	if id != "" {
		filter = append(bson.D{{Key: "_id", Value: id}}, filter...)
	}
	return filter
}

func (c *collection[T]) List(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.QueryTimeout)
	defer cancel()

	sort := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := c.coll.Find(ctx, c.owned(""), sort)
	if err != nil {
		return nil, handleError("list "+c.entity, err)
	}
	items := []*T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, handleError("decode "+c.entity, err)
	}
	return items, nil
}

func (c *collection[T]) Get(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.QueryTimeout)
	defer cancel()

	item := new(T)
	err := c.coll.FindOne(ctx, c.owned(id)).Decode(item)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.NewNotFoundError(c.entity, id)
	}
	if err != nil {
		return nil, handleError("get "+c.entity, err)
	}
	return item, nil
}

func (c *collection[T]) Create(ctx context.Context, item *T) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.WriteTimeout)
	defer cancel()

	c.base(item).OwnerID = c.owner
	if _, err := c.coll.InsertOne(ctx, item); err != nil {
		return handleError("insert "+c.entity, err)
	}
	return nil
}

func (c *collection[T]) Update(ctx context.Context, item *T) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.WriteTimeout)
	defer cancel()

	rec := c.base(item)
	rec.OwnerID = c.owner
	res, err := c.coll.ReplaceOne(ctx, c.owned(rec.ID), item)
	if err != nil {
		return handleError("update "+c.entity, err)
	}
	if res.MatchedCount == 0 {
		return errors.NewNotFoundError(c.entity, rec.ID)
	}
	return nil
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.WriteTimeout)
	defer cancel()

	res, err := c.coll.DeleteOne(ctx, c.owned(id))
	if err != nil {
		return handleError("delete "+c.entity, err)
	}
	if res.DeletedCount == 0 {
		return errors.NewNotFoundError(c.entity, id)
	}
	return nil
}

func handleError(operation string, err error) error {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewTimeoutError(operation, err.Error())
	case mongo.IsNetworkError(err), stderrors.Is(err, mongo.ErrClientDisconnected):
		return errors.NewStoreUnavailableError(err)
	default:
		return errors.NewDatabaseError(operation, err)
	}
}
