// Package relations implements the add/remove logic shared by favorites,
// shopping-cart membership and subscriptions. The three kinds differ only
// in which join table they write and whether self-reference is forbidden.
package relations

import (
	"errors"
	"strings"
)

var (
	ErrAlreadyExists    = errors.New("relation already exists")
	ErrNotFound         = errors.New("relation does not exist")
	ErrSelfSubscription = errors.New("self subscription is not allowed")
)

// Store persists join rows for a single relation kind.
type Store interface {
	Exists(actorID, targetID uint) (bool, error)
	Create(actorID, targetID uint) error
	// Remove deletes the row and reports how many rows were affected.
	Remove(actorID, targetID uint) (int64, error)
}

type Service struct {
	store      Store
	forbidSelf bool
}

func NewService(store Store, forbidSelf bool) *Service {
	return &Service{store: store, forbidSelf: forbidSelf}
}

// Add creates the (actor, target) row. Racing adds are resolved by the
// unique index: the loser's constraint violation maps to ErrAlreadyExists.
func (s *Service) Add(actorID, targetID uint) error {
	if s.forbidSelf && actorID == targetID {
		return ErrSelfSubscription
	}

	exists, err := s.store.Exists(actorID, targetID)

	if err != nil {
		return err
	}

	if exists {
		return ErrAlreadyExists
	}

	if err := s.store.Create(actorID, targetID); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return err
	}

	return nil
}

// Remove deletes exactly one (actor, target) row.
func (s *Service) Remove(actorID, targetID uint) error {
	deleted, err := s.store.Remove(actorID, targetID)

	if err != nil {
		return err
	}

	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
