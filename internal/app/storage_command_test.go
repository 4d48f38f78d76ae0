package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavernkeep/internal/store"
)

func TestJournal(t *testing.T) {
	a := newTestApp(t, store.NewMemoryDataStore())
	assert.Equal(t, "# Journal\n\n*Your journal is currently empty.*", run(t, a, "journal"))

	run(t, a, "a halfling named Tib")
	out := run(t, a, "journal")
	assert.True(t, strings.HasPrefix(out, "# Journal\n\n## Characters\n\n`Tib` ("), out)
	assert.NotContains(t, out, "## Places")

	a = newTestApp(t, store.NullDataStore{})
	assert.Equal(t,
		"# Journal\n\n*Your journal is currently empty.*\n\n! Your journal is not being persisted in this session.",
		run(t, a, "journal"))
}

func TestLoadSaveDelete(t *testing.T) {
	a := newTestApp(t, store.NewMemoryDataStore())
	ctx := context.Background()

	out := run(t, a, "elf")
	name := firstLine(out)

	loaded := run(t, a, "load "+strings.ToLower(name))
	assert.True(t, strings.HasPrefix(loaded, "# "+name+"\n"), loaded)
	assert.Contains(t, loaded, "\n\n_"+name+" has not yet been saved. Use ~save~ to save ")

	_, err := a.Command(ctx, "load Nobody")
	require.Error(t, err)
	assert.Equal(t, `No matches for "Nobody"`, err.Error())

	assert.True(t, strings.HasSuffix(run(t, a, "save "+name), " was successfully saved."))
	assert.NotContains(t, run(t, a, "load "+name), "has not yet been saved")

	assert.Equal(t, name+" was successfully deleted.", run(t, a, "delete "+name))
	_, err = a.Command(ctx, "delete "+name)
	require.Error(t, err)
	assert.Equal(t, "There is no entity named "+name+".", err.Error())
}

func TestParseStorageCommand(t *testing.T) {
	a := newTestApp(t, store.NullDataStore{})
	meta := a.Meta()
	run(t, a, "a halfling named Tib")

	exact, fuzzy := parseStorageCommand("load tib", meta)
	assert.Equal(t, StorageCommand{Kind: StorageLoad, Name: "Tib"}, exact)
	assert.Empty(t, fuzzy)

	exact, fuzzy = parseStorageCommand("TIB", meta)
	assert.Nil(t, exact)
	assert.Equal(t, []Command{StorageCommand{Kind: StorageLoad, Name: "Tib"}}, fuzzy)

	exact, _ = parseStorageCommand("delete Nobody", meta)
	assert.Equal(t, StorageCommand{Kind: StorageDelete, Name: "Nobody"}, exact)

	exact, _ = parseStorageCommand("load ", meta)
	assert.Nil(t, exact)
}

func TestAutocompleteStorageCommand(t *testing.T) {
	a := newTestApp(t, store.NewMemoryDataStore())
	meta := a.Meta()
	run(t, a, "a halfling named Tib")

	got := autocompleteStorageCommand("load T", meta)
	require.Len(t, got, 1)
	assert.Equal(t, "load Tib", got[0].Text)

	assert.Empty(t, autocompleteStorageCommand("save T", meta), "already saved")
	assert.Equal(t,
		[]Suggestion{{Text: "delete Tib", Summary: "remove character from journal"}},
		autocompleteStorageCommand("delete t", meta))
	assert.Equal(t,
		[]Suggestion{{Text: "journal", Summary: "list journal contents"}},
		autocompleteStorageCommand("jo", meta))
}
