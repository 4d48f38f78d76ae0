package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavernkeep/internal/world"
)

func TestNullDataStore(t *testing.T) {
	ctx := context.Background()
	var s NullDataStore

	_, err := s.GetAllTheThings(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, s.SetValue(ctx, "time", "x"), ErrUnavailable)
	assert.ErrorIs(t, s.SaveThing(ctx, &world.Npc{UUID: uuid.New()}), ErrUnavailable)
}

func TestMemoryDataStore_ClonesThings(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryDataStore()

	npc := &world.Npc{UUID: uuid.New(), Name: world.NewField("Mira")}
	require.NoError(t, s.SaveThing(ctx, npc))

	npc.Name = world.NewField("Changed")

	things, err := s.GetAllTheThings(ctx)
	require.NoError(t, err)
	require.Len(t, things, 1)
	name, _ := world.Name(things[0])
	assert.Equal(t, "Mira", name)

	require.NoError(t, s.DeleteThingByUUID(ctx, npc.UUID))
	assert.ErrorIs(t, s.DeleteThingByUUID(ctx, npc.UUID), ErrNotFound)
}
