package relations

import (
	"errors"
	"fmt"
	"testing"
)

type pair struct {
	actor  uint
	target uint
}

// fakeStore is an in-memory Store used to exercise the service policy
// without a database.
type fakeStore struct {
	rows      map[pair]bool
	createErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[pair]bool)}
}

func (s *fakeStore) Exists(actorID, targetID uint) (bool, error) {
	return s.rows[pair{actorID, targetID}], nil
}

func (s *fakeStore) Create(actorID, targetID uint) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.rows[pair{actorID, targetID}] = true
	return nil
}

func (s *fakeStore) Remove(actorID, targetID uint) (int64, error) {
	key := pair{actorID, targetID}
	if !s.rows[key] {
		return 0, nil
	}
	delete(s.rows, key)
	return 1, nil
}

func TestServiceAdd(t *testing.T) {
	tests := []struct {
		name       string
		forbidSelf bool
		actor      uint
		target     uint
		existing   []pair
		wantErr    error
	}{
		{
			name:   "creates new relation",
			actor:  1,
			target: 2,
		},
		{
			name:     "second add reports already exists",
			actor:    1,
			target:   2,
			existing: []pair{{1, 2}},
			wantErr:  ErrAlreadyExists,
		},
		{
			name:       "self reference forbidden for subscriptions",
			forbidSelf: true,
			actor:      7,
			target:     7,
			wantErr:    ErrSelfSubscription,
		},
		{
			name:       "self reference forbidden regardless of prior state",
			forbidSelf: true,
			actor:      7,
			target:     7,
			existing:   []pair{{7, 7}},
			wantErr:    ErrSelfSubscription,
		},
		{
			name:   "self reference allowed for recipe relations",
			actor:  3,
			target: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			for _, p := range tt.existing {
				store.rows[p] = true
			}

			service := NewService(store, tt.forbidSelf)
			err := service.Add(tt.actor, tt.target)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr == nil && !store.rows[pair{tt.actor, tt.target}] {
				t.Errorf("Add() did not persist the relation")
			}
		})
	}
}

func TestServiceAddMapsUniqueViolation(t *testing.T) {
	// A racing add slips past the existence pre-check and loses at the
	// unique index; the constraint violation must surface as AlreadyExists.
	store := newFakeStore()
	store.createErr = fmt.Errorf(`ERROR: duplicate key value violates unique constraint "idx_favorite_user_recipe" (SQLSTATE 23505)`)

	service := NewService(store, false)

	if err := service.Add(1, 2); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Add() error = %v, want ErrAlreadyExists", err)
	}
}

func TestServiceAddPassesThroughStorageErrors(t *testing.T) {
	store := newFakeStore()
	store.createErr = fmt.Errorf("connection refused")

	service := NewService(store, false)
	err := service.Add(1, 2)

	if errors.Is(err, ErrAlreadyExists) || err == nil {
		t.Fatalf("Add() error = %v, want raw storage error", err)
	}
}

func TestServiceRemove(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, false)

	if err := service.Add(1, 2); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := service.Remove(1, 2); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if err := service.Remove(1, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Remove() error = %v, want ErrNotFound", err)
	}
}

func TestAddRemoveAddCycle(t *testing.T) {
	store := newFakeStore()
	service := NewService(store, true)

	if err := service.Add(1, 2); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}

	if err := service.Add(1, 2); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("duplicate Add() error = %v, want ErrAlreadyExists", err)
	}

	if err := service.Remove(1, 2); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if err := service.Add(1, 2); err != nil {
		t.Fatalf("re-Add() after Remove() error = %v", err)
	}
}
