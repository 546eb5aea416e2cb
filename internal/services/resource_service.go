package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"studyflow/internal/domain"
	"studyflow/internal/errors"
	"studyflow/internal/repository"
	"studyflow/internal/validation"
)

// definition binds one entity kind to its storage and rules.
type definition[T any, F any] struct {
	kind           domain.Kind
	collection     func(repository.Scope) repository.Collection[T]
	base           func(*T) *domain.Record
	build          func(F) T
	apply          func(*T, F)
	validateCreate func(F) error
	validate       func(*T) error
}

// resourceServiceImpl implements ResourceService for any kind
type resourceServiceImpl[T any, F any] struct {
	store repository.Store
	def   definition[T, F]
	newID func() string
	now   func() time.Time
}

func newResourceService[T any, F any](store repository.Store, def definition[T, F], clock func() time.Time) *resourceServiceImpl[T, F] {
	return &resourceServiceImpl[T, F]{
		store: store,
		def:   def,
		newID: uuid.NewString,
		now:   clock,
	}
}

func (s *resourceServiceImpl[T, F]) scoped(owner domain.OwnerID) (repository.Collection[T], error) {
	if owner == "" {
		return nil, errors.NewAuthError("request has no owner identity", nil)
	}
	return s.def.collection(s.store.ForOwner(owner)), nil
}

func (s *resourceServiceImpl[T, F]) scopedRecord(owner domain.OwnerID, id string) (repository.Collection[T], error) {
	coll, err := s.scoped(owner)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, errors.NewNotFoundError(s.def.kind.Label(), id)
	}
	return coll, nil
}

// List returns every record of the kind owned by owner
func (s *resourceServiceImpl[T, F]) List(ctx context.Context, owner domain.OwnerID) ([]*T, error) {
	coll, err := s.scoped(owner)
	if err != nil {
		return nil, err
	}
	return coll.List(ctx)
}

// Create validates the supplied fields, builds the record with its defaults
// and persists it under owner
func (s *resourceServiceImpl[T, F]) Create(ctx context.Context, owner domain.OwnerID, fields F) (*T, error) {
	coll, err := s.scoped(owner)
	if err != nil {
		return nil, err
	}

	if err := s.def.validateCreate(fields); err != nil {
		return nil, validation.ToAppError(err)
	}

	item := s.def.build(fields)
	if err := s.def.validate(&item); err != nil {
		return nil, validation.ToAppError(err)
	}

	s.def.base(&item).Stamp(s.newID(), owner, s.now().UTC())
	if err := coll.Create(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update applies patch to the owner's record with the given id
func (s *resourceServiceImpl[T, F]) Update(ctx context.Context, owner domain.OwnerID, id string, patch F) (*T, error) {
	coll, err := s.scopedRecord(owner, id)
	if err != nil {
		return nil, err
	}

	item, err := coll.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.def.apply(item, patch)
	if err := s.def.validate(item); err != nil {
		return nil, validation.ToAppError(err)
	}

	s.def.base(item).Touch(s.now().UTC())
	if err := coll.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes the owner's record with the given id
func (s *resourceServiceImpl[T, F]) Delete(ctx context.Context, owner domain.OwnerID, id string) error {
	coll, err := s.scopedRecord(owner, id)
	if err != nil {
		return err
	}
	return coll.Delete(ctx, id)
}
