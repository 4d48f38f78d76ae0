package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tavernkeep/internal/world"
)

var (
	// ErrUnavailable is returned by every NullDataStore call.
	ErrUnavailable = errors.New("data store unavailable")
	ErrNotFound    = errors.New("not found")
)

// DataStore persists saved things and a small key/value table.
type DataStore interface {
	Close(ctx context.Context) error

	GetAllTheThings(ctx context.Context) ([]world.Thing, error)
	SaveThing(ctx context.Context, thing world.Thing) error
	DeleteThingByUUID(ctx context.Context, id uuid.UUID) error

	// GetValue reports whether key exists.
	GetValue(ctx context.Context, key string) (string, bool, error)
	SetValue(ctx context.Context, key, value string) error
}

// NullDataStore fails every call, which leaves a repository in
// ephemeral mode.
type NullDataStore struct{}

var _ DataStore = NullDataStore{}

func (NullDataStore) Close(context.Context) error { return nil }

func (NullDataStore) GetAllTheThings(context.Context) ([]world.Thing, error) {
	return nil, ErrUnavailable
}

func (NullDataStore) SaveThing(context.Context, world.Thing) error { return ErrUnavailable }

func (NullDataStore) DeleteThingByUUID(context.Context, uuid.UUID) error { return ErrUnavailable }

func (NullDataStore) GetValue(context.Context, string) (string, bool, error) {
	return "", false, ErrUnavailable
}

func (NullDataStore) SetValue(context.Context, string, string) error { return ErrUnavailable }
