// Package reference serves the embedded spell and weapon entries.
package reference

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"

	"tavernkeep/internal/parser"
)

//go:embed data
var dataFS embed.FS

type Kind int

const (
	KindSpell Kind = iota
	KindWeapon
)

var weaponCategories = []string{
	"Simple Melee Weapons",
	"Simple Ranged Weapons",
	"Martial Melee Weapons",
	"Martial Ranged Weapons",
}

type Entry struct {
	Kind Kind
	doc  *parser.Document
}

func (e Entry) Name() string {
	return e.doc.Title
}

// Summary is a short lowercase description, eg. "3rd-level evocation".
func (e Entry) Summary() string {
	switch e.Kind {
	case KindSpell:
		level, _ := strconv.Atoi(e.doc.String("level"))
		school := e.doc.String("school")
		if level == 0 {
			return school + " cantrip"
		}
		return fmt.Sprintf("%s-level %s", ordinal(level), school)
	default:
		return strings.ToLower(strings.TrimSuffix(e.doc.String("category"), "s"))
	}
}

// Render returns the full entry as markdown.
func (e Entry) Render() string {
	var rows []string
	row := func(label, value string) {
		if value != "" {
			rows = append(rows, fmt.Sprintf("**%s:** %s", label, value))
		}
	}

	subtitle := capitalize(e.Summary())
	switch e.Kind {
	case KindSpell:
		row("Casting Time", e.doc.String("casting_time"))
		row("Range", e.doc.String("range"))
		row("Components", e.doc.String("components"))
		row("Duration", e.doc.String("duration"))
	case KindWeapon:
		subtitle = strings.TrimSuffix(e.doc.String("category"), "s")
		row("Cost", e.doc.String("cost"))
		row("Damage", e.doc.String("damage"))
		row("Weight", e.doc.String("weight"))
		row("Properties", strings.Join(e.doc.Strings("properties"), ", "))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n*%s*", e.doc.Title, subtitle)
	if len(rows) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(rows, "\\\n"))
	}
	if e.doc.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(e.doc.Body)
	}
	return b.String()
}

// Index is an immutable, name-addressable set of entries.
type Index struct {
	entries []Entry
	byName  map[string]int
}

// Load reads spells/*.md and weapons/*.md from fsys.
func Load(fsys fs.FS) (*Index, error) {
	idx := &Index{byName: make(map[string]int)}
	for _, dir := range []struct {
		path string
		kind Kind
		want string
	}{
		{"spells", KindSpell, "spell"},
		{"weapons", KindWeapon, "weapon"},
	} {
		docs, err := parser.ParseDir(fsys, dir.path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", dir.path, err)
		}
		for _, doc := range docs {
			if doc.Kind != dir.want {
				return nil, fmt.Errorf("%s: expected kind %q, got %q", doc.SourceFile, dir.want, doc.Kind)
			}
			if err := defaultSchema.Validate(doc); err != nil {
				return nil, fmt.Errorf("loading %s: %w", dir.path, err)
			}
			if err := idx.add(Entry{Kind: dir.kind, doc: doc}); err != nil {
				return nil, err
			}
		}
	}

	sort.SliceStable(idx.entries, func(i, j int) bool {
		return idx.entries[i].Name() < idx.entries[j].Name()
	})
	for i, e := range idx.entries {
		idx.byName[strings.ToLower(e.Name())] = i
		for _, alias := range e.doc.Aliases {
			idx.byName[strings.ToLower(alias)] = i
		}
	}
	return idx, nil
}

func (idx *Index) add(e Entry) error {
	for _, name := range append([]string{e.Name()}, e.doc.Aliases...) {
		key := strings.ToLower(name)
		if _, dup := idx.byName[key]; dup {
			return fmt.Errorf("%s: duplicate reference name %q", e.doc.SourceFile, name)
		}
		idx.byName[key] = -1
	}
	idx.entries = append(idx.entries, e)
	return nil
}

var (
	defaultOnce  sync.Once
	defaultIndex *Index
)

// Default returns the index of the embedded entries. It panics if they are
// malformed.
func Default() *Index {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(dataFS, "data")
		if err != nil {
			panic(err)
		}
		idx, err := Load(sub)
		if err != nil {
			panic(fmt.Sprintf("embedded reference data: %v", err))
		}
		defaultIndex = idx
	})
	return defaultIndex
}

// Lookup finds an entry by case-insensitive name or alias.
func (idx *Index) Lookup(name string) (Entry, bool) {
	i, ok := idx.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Entry{}, false
	}
	return idx.entries[i], true
}

func (idx *Index) Entries(kind Kind) []Entry {
	var out []Entry
	for _, e := range idx.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Complete returns entries whose name starts with prefix, ignoring case.
func (idx *Index) Complete(prefix string) []Entry {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return nil
	}
	var out []Entry
	for _, e := range idx.entries {
		if strings.HasPrefix(strings.ToLower(e.Name()), prefix) {
			out = append(out, e)
		}
	}
	return out
}

// SpellList renders every spell as a markdown list.
func (idx *Index) SpellList() string {
	var b strings.Builder
	b.WriteString("# Spells")
	for _, e := range idx.Entries(KindSpell) {
		fmt.Fprintf(&b, "\n* `%s` (%s)", e.Name(), e.Summary())
	}
	return b.String()
}

// WeaponTable renders every weapon as markdown tables grouped by category.
func (idx *Index) WeaponTable() string {
	groups := make(map[string][]Entry)
	var extra []string
	for _, e := range idx.Entries(KindWeapon) {
		category := e.doc.String("category")
		if _, seen := groups[category]; !seen && !contains(weaponCategories, category) {
			extra = append(extra, category)
		}
		groups[category] = append(groups[category], e)
	}
	sort.Strings(extra)

	var b strings.Builder
	b.WriteString("# Weapons")
	for _, category := range append(append([]string{}, weaponCategories...), extra...) {
		entries := groups[category]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n\n## %s\n\n| Name | Cost | Damage | Weight | Properties |\n|---|---|---|---|---|", category)
		for _, e := range entries {
			properties := strings.Join(e.doc.Strings("properties"), ", ")
			if properties == "" {
				properties = "-"
			}
			fmt.Fprintf(&b, "\n| %s | %s | %s | %s | %s |",
				e.Name(), e.doc.String("cost"), e.doc.String("damage"), e.doc.String("weight"), properties)
		}
	}
	return b.String()
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	if n%100 >= 11 && n%100 <= 13 {
		suffix = "th"
	}
	return strconv.Itoa(n) + suffix
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
