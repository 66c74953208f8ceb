// Package relation manages (user, target) membership sets: favorites,
// shopping cart entries and author subscriptions share one add/remove contract.
package relation

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

var (
	ErrAlreadyExists = errors.New("already added")
	ErrNotMember     = errors.New("not found in")
	ErrSelfReference = errors.New("cannot add yourself")
	ErrNoUser        = errors.New("no user")
)

type RelationStore interface {
	AddRelation(ctx context.Context, kind model.RelationKind, userID, targetID uint) error
	RemoveRelation(ctx context.Context, kind model.RelationKind, userID, targetID uint) (bool, error)
}

// Loader resolves the target of a relation, returning repository.ErrNotFound
// when it does not exist.
type Loader[T any] func(ctx context.Context, targetID uint) (T, error)

type Toggle[T any] struct {
	kind      model.RelationKind
	store     RelationStore
	load      Loader[T]
	allowSelf bool
	logger    *zap.Logger
}

// NewToggle builds the toggle for kind. Follow relations reject a user
// targeting themselves.
func NewToggle[T any](kind model.RelationKind, store RelationStore, load Loader[T], logger *zap.Logger) *Toggle[T] {
	return &Toggle[T]{
		kind:      kind,
		store:     store,
		load:      load,
		allowSelf: kind != model.FollowRelation,
		logger:    logger.With(zap.String("relation", string(kind))),
	}
}

func (t *Toggle[T]) Kind() model.RelationKind {
	return t.kind
}

// Add makes targetID a member of the user's set and returns the target.
func (t *Toggle[T]) Add(ctx context.Context, user *model.User, targetID uint) (T, error) {
	var target T

	if user == nil {
		return target, ErrNoUser
	}

	if !t.allowSelf && user.ID == targetID {
		return target, fmt.Errorf("%w to %s", ErrSelfReference, t.kind.Description())
	}

	target, err := t.load(ctx, targetID)
	if err != nil {
		return target, err
	}

	err = t.store.AddRelation(ctx, t.kind, user.ID, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return target, fmt.Errorf("%w to %s", ErrAlreadyExists, t.kind.Description())
		}

		t.logger.Error("error adding relation", zap.Uint("user_id", user.ID), zap.Uint("target_id", targetID), zap.Error(err))

		return target, err
	}

	return target, nil
}

// Remove drops targetID from the user's set. Removing a pair that is not a
// member is an error, not a no-op.
func (t *Toggle[T]) Remove(ctx context.Context, user *model.User, targetID uint) error {
	if user == nil {
		return ErrNoUser
	}

	if _, err := t.load(ctx, targetID); err != nil {
		return err
	}

	removed, err := t.store.RemoveRelation(ctx, t.kind, user.ID, targetID)
	if err != nil {
		return err
	}

	if !removed {
		return fmt.Errorf("%w %s", ErrNotMember, t.kind.Description())
	}

	return nil
}
