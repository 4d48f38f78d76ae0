// Package bolt persists things in a single bbolt file.
package bolt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	bbolt "go.etcd.io/bbolt"

	"tavernkeep/internal/store"
	"tavernkeep/internal/world"
)

var (
	bucketThings   = []byte("things")
	bucketKeyValue = []byte("key_value")
)

var _ store.DataStore = (*Store)(nil)

type Store struct {
	db *bbolt.DB
}

// Open opens or creates the database file at path and ensures its buckets
// exist.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketThings, bucketKeyValue} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bolt buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close(context.Context) error {
	return s.db.Close()
}

func (s *Store) Path() string {
	return s.db.Path()
}

func (s *Store) GetAllTheThings(context.Context) ([]world.Thing, error) {
	var things []world.Thing
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketThings).ForEach(func(k, v []byte) error {
			thing, err := world.UnmarshalThing(v)
			if err != nil {
				return fmt.Errorf("thing %x: %w", k, err)
			}
			things = append(things, thing)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("loading things: %w", err)
	}
	return things, nil
}

func (s *Store) SaveThing(_ context.Context, thing world.Thing) error {
	id := thing.ID()
	if id == uuid.Nil {
		return fmt.Errorf("saving thing: missing uuid")
	}

	data, err := world.MarshalThing(thing)
	if err != nil {
		return fmt.Errorf("encoding thing %s: %w", id, err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketThings).Put(id[:], data)
	})
}

func (s *Store) DeleteThingByUUID(_ context.Context, id uuid.UUID) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketThings)
		if b.Get(id[:]) == nil {
			return fmt.Errorf("deleting thing %s: %w", id, store.ErrNotFound)
		}
		return b.Delete(id[:])
	})
}

func (s *Store) GetValue(_ context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketKeyValue).Get([]byte(key)); v != nil {
			value, found = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, found, nil
}

func (s *Store) SetValue(_ context.Context, key, value string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKeyValue).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}
