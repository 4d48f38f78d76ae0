package world

import (
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitWords(t *testing.T) {
	words := SplitWords(`  an elf named "Mira Vale" now`)
	require.Len(t, words, 5)

	assert.Equal(t, Word{Text: "an", Start: 2, End: 4}, words[0])
	assert.Equal(t, Word{Text: "Mira Vale", Start: 15, End: 26}, words[3])
	assert.Equal(t, "now", words[4].Text)
}

func TestParseNpc(t *testing.T) {
	tests := []struct {
		input   string
		species Species
		age     Age
		gender  Gender
		name    string
		unknown []Range
	}{
		{input: "an elderly elf", species: Elf, age: Elderly},
		{input: "young dwarf, she/her", species: Dwarf, age: YoungAdult, gender: Feminine},
		{input: "boy named Pip", age: Child, gender: Masculine, name: "Pip"},
		{input: "a grumpy human", species: Human, unknown: []Range{{2, 8}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseNpc(tt.input)
			require.NoError(t, err)
			npc := parsed.Thing

			if species, ok := npc.Species.Value(); ok {
				assert.Equal(t, tt.species, species)
			}
			if age, ok := npc.Age.Value(); ok {
				assert.Equal(t, tt.age, age)
			}
			if gender, ok := npc.Gender.Value(); ok {
				assert.Equal(t, tt.gender, gender)
			}
			assert.Equal(t, tt.name, npc.Name.ValueOr(""))
			assert.Equal(t, tt.unknown, parsed.UnknownWords)
		})
	}
}

func TestParseNpc_Unrecognized(t *testing.T) {
	_, err := ParseNpc("potato")
	assert.ErrorIs(t, err, ErrUnrecognized)
}

func TestParseThing_PrefersFewerUnknownWords(t *testing.T) {
	parsed, err := ParseThing("inn")
	require.NoError(t, err)
	assert.Equal(t, KindPlace, parsed.Thing.Kind())

	parsed, err = ParseThing("elf")
	require.NoError(t, err)
	assert.Equal(t, KindNpc, parsed.Thing.Kind())

	parsed, err = ParseThing("named Bob")
	require.NoError(t, err)
	assert.Equal(t, KindNpc, parsed.Thing.Kind(), "ties go to characters")

	parsed, err = ParseThing("a bar called The Rusty Nail")
	require.NoError(t, err)
	require.Equal(t, KindPlace, parsed.Thing.Kind())
	place := parsed.Thing.(*Place)
	assert.Equal(t, PlaceType("tavern"), place.Subtype.ValueOr(""))
	assert.Equal(t, "The Rusty Nail", place.Name.ValueOr(""))
}

func TestParseDiff_Shift(t *testing.T) {
	spot := &Npc{Name: NewField("Spot")}
	input := "Spot is a good boy"

	parsed, err := ParseDiff(spot, input[8:])
	require.NoError(t, err)
	parsed.Shift(8)

	assert.Equal(t, []Range{{10, 14}}, parsed.UnknownWords)
	assert.Equal(t, 2, parsed.WordCount)
	npc := parsed.Thing.(*Npc)
	assert.Equal(t, Child, npc.Age.ValueOr(Adult))
	assert.Equal(t, Masculine, npc.Gender.ValueOr(Feminine))
}

func TestDescription_RoundTrips(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	d := DefaultDemographics()

	for i := 0; i < 50; i++ {
		npc := &Npc{}
		npc.Regenerate(rng, d)

		parsed, err := ParseNpc(npc.Description())
		require.NoError(t, err, npc.Description())
		assert.Empty(t, parsed.UnknownWords, npc.Description())
		assert.Equal(t, npc.Description(), parsed.Thing.Description())
	}

	for _, pt := range PlaceTypes() {
		parsed, err := ParseThing((&Place{Subtype: NewField(pt)}).Description())
		require.NoError(t, err)
		assert.Equal(t, pt.String(), parsed.Thing.Description())
	}
}

func TestCompletePlaceAndNpc(t *testing.T) {
	var got []string
	for _, c := range append(CompleteNpc("b"), CompletePlace("b")...) {
		got = append(got, c.Text+" => "+c.Thing.Description())
	}
	sort.Strings(got)

	assert.Equal(t, []string{
		"baby => infant",
		"bakery => bakery",
		"bank => bank",
		"bar => tavern",
		"barony => barony",
		"barracks => barracks",
		"barrens => barrens",
		"base => base",
		"bathhouse => bathhouse",
		"beach => beach",
		"blacksmith => blacksmith",
		"boy => child, he/him",
		"brewery => brewery",
		"bridge => bridge",
		"building => building",
		"business => business",
	}, got)
}

func TestCompleteNpc_LastWordOnly(t *testing.T) {
	var got []string
	for _, c := range CompleteNpc("an e") {
		got = append(got, c.Text)
	}
	assert.Equal(t, []string{"an elderly", "an elf", "an elvish", "an enby"}, got)

	assert.Empty(t, CompleteNpc("an elf "), "no completion after trailing space")
}

func TestComplete_SkipsUnknownWords(t *testing.T) {
	assert.Empty(t, CompleteNpc("grumpy e"))
	assert.Empty(t, CompletePlace("Potato Johnson is an e"))

	got := CompleteNpc("old e")
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.True(t, strings.HasPrefix(c.Text, "old e"), c.Text)
	}
}

func TestIsArticle(t *testing.T) {
	assert.True(t, IsArticle("a"))
	assert.True(t, IsArticle("An"))
	assert.False(t, IsArticle("the"))
}
