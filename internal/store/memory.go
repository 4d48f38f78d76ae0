package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"tavernkeep/internal/world"
)

// MemoryDataStore keeps everything in process memory. Things are cloned on
// the way in and out.
type MemoryDataStore struct {
	mu     sync.RWMutex
	things map[uuid.UUID]world.Thing
	values map[string]string
}

var _ DataStore = (*MemoryDataStore)(nil)

func NewMemoryDataStore() *MemoryDataStore {
	return &MemoryDataStore{
		things: make(map[uuid.UUID]world.Thing),
		values: make(map[string]string),
	}
}

func (m *MemoryDataStore) Close(context.Context) error { return nil }

func (m *MemoryDataStore) GetAllTheThings(context.Context) ([]world.Thing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	things := make([]world.Thing, 0, len(m.things))
	for _, t := range m.things {
		things = append(things, t.Clone())
	}
	return things, nil
}

func (m *MemoryDataStore) SaveThing(_ context.Context, thing world.Thing) error {
	if thing.ID() == uuid.Nil {
		return fmt.Errorf("saving thing: missing uuid")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.things[thing.ID()] = thing.Clone()
	return nil
}

func (m *MemoryDataStore) DeleteThingByUUID(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.things[id]; !ok {
		return fmt.Errorf("deleting thing %s: %w", id, ErrNotFound)
	}
	delete(m.things, id)
	return nil
}

func (m *MemoryDataStore) GetValue(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

func (m *MemoryDataStore) SetValue(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
