// Package repository defines the owner-scoped document store the services
// persist through. A Store hands out a Scope per owner; every collection
// reached through a Scope only ever sees that owner's records, and there is
// no other way to reach a collection.
package repository

import (
	"context"

	"studyflow/internal/domain"
)

// Collection is one kind's records for a single owner.
//
// Get, Update and Delete report a NotFound AppError both when the id does not
// exist and when it belongs to a different owner.
type Collection[T any] interface {
	// List returns the owner's records in insertion order.
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
	// Create persists item. The item's owner is forced to the scope owner.
	Create(ctx context.Context, item *T) error
	// Update replaces the stored record that has item's id.
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id string) error
}

// Scope exposes every collection for one owner.
type Scope interface {
	Owner() domain.OwnerID
	Tasks() Collection[domain.Task]
	Notes() Collection[domain.Note]
	Reminders() Collection[domain.Reminder]
	Budgets() Collection[domain.BudgetEntry]
	StudySessions() Collection[domain.StudySession]
}

// Store is a document store backend.
type Store interface {
	ForOwner(owner domain.OwnerID) Scope
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	Close() error
}
