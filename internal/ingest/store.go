package ingest

import (
	"context"

	"github.com/google/uuid"

	"tavernkeep/internal/world"
)

// Store is the part of a data store an import writes to.
type Store interface {
	GetAllTheThings(ctx context.Context) ([]world.Thing, error)
	SaveThing(ctx context.Context, t world.Thing) error
	DeleteThingByUUID(ctx context.Context, id uuid.UUID) error
	SetValue(ctx context.Context, key, value string) error
}
