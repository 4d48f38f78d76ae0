package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavernkeep/internal/store"
	"tavernkeep/internal/world"
)

func TestStore_ThingsAndValues(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tavernkeep.db")

	s, err := Open(path)
	require.NoError(t, err)

	npc := &world.Npc{UUID: uuid.New(), Name: world.NewField("Mira"), Species: world.NewField(world.Elf)}
	inn := &world.Place{UUID: uuid.New(), Name: world.NewField("The Drunken Owl"), Subtype: world.NewField(world.PlaceType("inn"))}
	require.NoError(t, s.SaveThing(ctx, npc))
	require.NoError(t, s.SaveThing(ctx, inn))
	require.NoError(t, s.SetValue(ctx, "time", "1:08:00:00"))

	assert.Error(t, s.SaveThing(ctx, &world.Npc{}), "unsaved things have no key")

	require.NoError(t, s.Close(ctx))

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close(ctx)

	things, err := s.GetAllTheThings(ctx)
	require.NoError(t, err)
	require.Len(t, things, 2)

	names := map[string]world.Kind{}
	for _, th := range things {
		name, _ := world.Name(th)
		names[name] = th.Kind()
	}
	assert.Equal(t, map[string]world.Kind{"Mira": world.KindNpc, "The Drunken Owl": world.KindPlace}, names)

	value, ok, err := s.GetValue(ctx, "time")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1:08:00:00", value)

	_, ok, err = s.GetValue(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.DeleteThingByUUID(ctx, npc.UUID))
	assert.ErrorIs(t, s.DeleteThingByUUID(ctx, npc.UUID), store.ErrNotFound)

	things, err = s.GetAllTheThings(ctx)
	require.NoError(t, err)
	assert.Len(t, things, 1)
}
