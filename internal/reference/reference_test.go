package reference

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Lookup(t *testing.T) {
	idx := Default()

	fireball, ok := idx.Lookup("FIREBALL")
	require.True(t, ok)
	assert.Equal(t, KindSpell, fireball.Kind)
	assert.Equal(t, "3rd-level evocation", fireball.Summary())

	out := fireball.Render()
	assert.True(t, strings.HasPrefix(out, "# Fireball\n*3rd-level evocation*\n\n**Casting Time:** 1 action\\\n**Range:** 150 feet"), out)
	assert.Contains(t, out, "8d6 fire damage")

	light, ok := idx.Lookup("light")
	require.True(t, ok)
	assert.Equal(t, "evocation cantrip", light.Summary())

	_, ok = idx.Lookup("wish")
	assert.False(t, ok)
}

func TestDefault_Weapon(t *testing.T) {
	longsword, ok := Default().Lookup("longsword")
	require.True(t, ok)
	assert.Equal(t, "martial melee weapon", longsword.Summary())
	assert.Equal(t, "# Longsword\n*Martial Melee Weapon*\n\n**Cost:** 15 gp\\\n**Damage:** 1d8 slashing\\\n**Weight:** 3 lb.\\\n**Properties:** Versatile (1d10)", longsword.Render())
}

func TestWeaponTable(t *testing.T) {
	table := Default().WeaponTable()

	assert.True(t, strings.HasPrefix(table, "# Weapons\n\n## Simple Melee Weapons\n\n| Name | Cost | Damage | Weight | Properties |\n|---|---|---|---|---|\n| Club | 1 sp | 1d4 bludgeoning | 2 lb. | Light |"), table)
	simple := strings.Index(table, "## Simple Ranged Weapons")
	martial := strings.Index(table, "## Martial Melee Weapons")
	assert.Greater(t, martial, simple)
	assert.Contains(t, table, "| Dagger | 2 gp | 1d4 piercing | 1 lb. | Finesse, Light, Thrown (range 20/60) |")
}

func TestSpellList(t *testing.T) {
	list := Default().SpellList()
	assert.Contains(t, list, "\n* `Magic Missile` (1st-level evocation)")
	assert.True(t, strings.HasPrefix(list, "# Spells\n* `Cure Wounds`"), list)
}

func TestComplete(t *testing.T) {
	var names []string
	for _, e := range Default().Complete("sh") {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"Shield", "Shortbow", "Shortsword"}, names)
	assert.Empty(t, Default().Complete(""))
}

func TestLoad(t *testing.T) {
	t.Run("aliases and extra categories", func(t *testing.T) {
		fsys := fstest.MapFS{
			"spells/a.md":  {Data: []byte("---\ntitle: Arcane Lock\nkind: spell\nlevel: 2\nschool: abjuration\naliases: [lock]\n---\n")},
			"weapons/b.md": {Data: []byte("---\ntitle: Net\nkind: weapon\ncategory: Odd Weapons\ncost: 1 gp\n---\n")},
		}
		idx, err := Load(fsys)
		require.NoError(t, err)

		e, ok := idx.Lookup("Lock")
		require.True(t, ok)
		assert.Equal(t, "Arcane Lock", e.Name())
		assert.Equal(t, "2nd-level abjuration", e.Summary())
		assert.Contains(t, idx.WeaponTable(), "## Odd Weapons")
		assert.Contains(t, idx.WeaponTable(), "| Net | 1 gp |  |  | - |")
	})

	t.Run("wrong kind", func(t *testing.T) {
		fsys := fstest.MapFS{
			"spells/a.md":   {Data: []byte("---\ntitle: Club\nkind: weapon\n---\n")},
			"weapons/.keep": {Data: nil},
		}
		_, err := Load(fsys)
		assert.ErrorContains(t, err, `expected kind "spell"`)
	})

	t.Run("duplicate names", func(t *testing.T) {
		fsys := fstest.MapFS{
			"spells/a.md":   {Data: []byte("---\ntitle: Light\nkind: spell\nlevel: 0\nschool: evocation\n---\n")},
			"spells/b.md":   {Data: []byte("---\ntitle: LIGHT\nkind: spell\nlevel: 0\nschool: evocation\n---\n")},
			"weapons/.keep": {Data: nil},
		}
		_, err := Load(fsys)
		assert.ErrorContains(t, err, "duplicate reference name")
	})

	t.Run("frontmatter violates schema", func(t *testing.T) {
		fsys := fstest.MapFS{
			"spells/a.md":   {Data: []byte("---\ntitle: Light\nkind: spell\nlevel: zero\nschool: evocation\n---\n")},
			"weapons/.keep": {Data: nil},
		}
		_, err := Load(fsys)
		assert.ErrorContains(t, err, "level must be a whole number")
	})
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 21: "21st"} {
		assert.Equal(t, want, ordinal(n))
	}
}
