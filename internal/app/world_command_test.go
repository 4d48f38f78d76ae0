package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavernkeep/internal/store"
	"tavernkeep/internal/world"
)

func TestCreate_Alternatives(t *testing.T) {
	a := newTestApp(t, store.NullDataStore{})

	out := run(t, a, "elf")
	assert.True(t, strings.HasPrefix(out, "# "), out)
	assert.Contains(t, out, "\n\n_Alternatives:_\\\n~1~ `")
	assert.Contains(t, out, "\\\n~4~ `")
	assert.True(t, strings.HasSuffix(out, "\n\n_For more suggestions, type ~more~._"), out)

	for _, term := range []string{"1", "2", "3", "4", "more"} {
		_, ok := a.Meta().Aliases.Get(term)
		assert.True(t, ok, term)
	}
	assert.Len(t, a.Meta().Repository.Recent(), 5)

	loaded := run(t, a, "1")
	assert.True(t, strings.HasPrefix(loaded, "# "), loaded)
	assert.NotContains(t, loaded, "has not yet been saved")
}

func TestCreate_More(t *testing.T) {
	a := newTestApp(t, store.NullDataStore{})
	run(t, a, "elf")

	out := run(t, a, "more")
	assert.True(t, strings.HasPrefix(out, "# Alternative suggestions for \"elf\"\n\n~1~ `"), out)
	assert.Contains(t, out, "\\\n~0~ `")
	assert.True(t, strings.HasSuffix(out, "\n\n_For even more suggestions, type ~more~._"), out)

	assert.True(t, strings.HasPrefix(run(t, a, "0"), "# "))
	assert.True(t, strings.HasPrefix(run(t, a, "more"), "# Alternative suggestions for \"elf\""))
}

func TestCreate_UnsavedWithStore(t *testing.T) {
	a := newTestApp(t, store.NewMemoryDataStore())

	out := run(t, a, "inn")
	name := firstLine(out)
	assert.Contains(t, out, "\n\n_"+name+" has not yet been saved. Use ~save~ to save it to your `journal`. For more suggestions, type ~more~._")

	assert.Equal(t, "`"+name+"` (inn) was successfully saved.", run(t, a, "save"))
	assert.Contains(t, run(t, a, "journal"), "\n\n## Places\n\n`"+name+"` (inn)")
}

func TestCreate_NamedWithStore(t *testing.T) {
	a := newTestApp(t, store.NewMemoryDataStore())

	out := run(t, a, "a halfling named Tib")
	assert.True(t, strings.HasPrefix(out, "# Tib\n"), out)
	assert.NotContains(t, out, "_Alternatives:_")
	assert.Contains(t, out, "_Because you specified a name, Tib has been automatically added to your `journal`. Use `delete Tib` to remove ")

	_, err := a.Command(context.Background(), "a halfling named Tib")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "That name is already in use by `Tib`")
}

func TestCreate_NamedWithoutStore(t *testing.T) {
	a := newTestApp(t, store.NullDataStore{})

	out := run(t, a, "create a dwarf named Brom")
	assert.NotContains(t, out, "_Alternatives:_")
	assert.NotContains(t, out, "journal")
	assert.NotContains(t, out, "~more~")
}

func TestCreate_UnknownWordsNotice(t *testing.T) {
	a := newTestApp(t, store.NullDataStore{})

	out := run(t, a, "create a grumpy elf")
	nbsp := "\u00a0"
	assert.True(t, strings.HasSuffix(out,
		"\n\n! tavernkeep doesn't know some of those words, but it did its best.\n\n"+
			"\\> create a **grumpy** elf\\\n"+
			strings.Repeat(nbsp, 2+9)+"^^^^^^\\\n"+
			vocabularyHint), out)
}

func TestAppendUnknownWordsNotice(t *testing.T) {
	assert.Equal(t, "out", appendUnknownWordsNotice("out", "an elf", nil))

	got := appendUnknownWordsNotice("out", "big red inn", []world.Range{{Start: 0, End: 3}, {Start: 4, End: 7}})
	assert.Contains(t, got, "\\> **big** **red** inn\\\n\u00a0\u00a0^^^\u00a0^^^\\\n")
}

func TestParseEdit(t *testing.T) {
	a := newTestApp(t, store.NullDataStore{})

	exact, fuzzy := parse("Spot is a good boy", a.Meta())
	assert.Nil(t, exact)
	require.Len(t, fuzzy, 1)

	cmd, ok := fuzzy[0].(WorldCommand)
	require.True(t, ok)
	assert.Equal(t, WorldEdit, cmd.Kind)
	assert.Equal(t, "Spot", cmd.Name)
	assert.Equal(t, []world.Range{{Start: 10, End: 14}}, cmd.Parsed.UnknownWords)
	assert.Equal(t, 2, cmd.Parsed.WordCount)

	_, err := a.Command(context.Background(), "Spot is a good boy")
	require.Error(t, err)
	assert.Equal(t, "There is no entity named Spot.", err.Error())
}

func TestEdit(t *testing.T) {
	a := newTestApp(t, store.NewMemoryDataStore())
	run(t, a, "a halfling named Tib")

	out := run(t, a, "tib is a child")
	assert.True(t, strings.HasPrefix(out, "`Tib` ("), out)
	assert.True(t, strings.HasSuffix(out, " was successfully edited."), out)

	renamed := run(t, a, "Tib is named Tibby")
	assert.True(t, strings.HasPrefix(renamed, "`Tibby` ("), renamed)
	_, ok := a.Meta().Repository.LoadThingByName("Tib")
	assert.False(t, ok)
}

func TestWorldCommand_String(t *testing.T) {
	parsed, err := world.ParseThing("an elf named Mira")
	require.NoError(t, err)

	assert.Equal(t, "create elf named Mira", WorldCommand{Kind: WorldCreate, Parsed: parsed}.String())
	assert.Equal(t, "more elf named Mira", WorldCommand{Kind: WorldCreateMultiple, Parsed: parsed}.String())
	assert.Equal(t, "Tib is elf named Mira", WorldCommand{Kind: WorldEdit, Parsed: parsed, Name: "Tib"}.String())
}
