package app

import (
	"context"
	"fmt"

	"tavernkeep/internal/reference"
)

type ReferenceCommandKind int

const (
	ReferenceEntry ReferenceCommandKind = iota
	ReferenceSpells
	ReferenceWeapons
)

type ReferenceCommand struct {
	Kind ReferenceCommandKind
	Name string
}

func (ReferenceCommand) isCommand() {}

func (c ReferenceCommand) String() string {
	switch c.Kind {
	case ReferenceSpells:
		return "spells"
	case ReferenceWeapons:
		return "weapons"
	default:
		return c.Name
	}
}

func (c ReferenceCommand) Run(_ context.Context, _ string, meta *AppMeta) (string, error) {
	switch c.Kind {
	case ReferenceSpells:
		return meta.Reference.SpellList(), nil
	case ReferenceWeapons:
		return meta.Reference.WeaponTable(), nil
	}

	entry, ok := meta.Reference.Lookup(c.Name)
	if !ok {
		return "", fmt.Errorf("No matches for %q", c.Name)
	}
	return entry.Render(), nil
}

func parseReferenceCommand(input string, meta *AppMeta) (Command, []Command) {
	switch input {
	case "spells":
		return ReferenceCommand{Kind: ReferenceSpells}, nil
	case "weapons":
		return ReferenceCommand{Kind: ReferenceWeapons}, nil
	}

	name, spellOnly := input, false
	if rest, ok := cutCommand(input, "spell"); ok {
		name, spellOnly = rest, true
	}
	if entry, ok := meta.Reference.Lookup(name); ok && (!spellOnly || entry.Kind == reference.KindSpell) {
		return ReferenceCommand{Kind: ReferenceEntry, Name: entry.Name()}, nil
	}
	return nil, nil
}

func autocompleteReferenceCommand(input string, meta *AppMeta) []Suggestion {
	var out []Suggestion
	for _, s := range []Suggestion{
		{Text: "spells", Summary: "SRD index"},
		{Text: "weapons", Summary: "SRD item category"},
	} {
		if hasWordPrefix(s.Text, input) {
			out = append(out, s)
		}
	}

	prefix, spellOnly := "", false
	if rest, ok := cutCommand(input, "spell"); ok {
		prefix, spellOnly = "spell ", true
		input = rest
	}
	for _, e := range meta.Reference.Complete(input) {
		if spellOnly && e.Kind != reference.KindSpell {
			continue
		}
		out = append(out, Suggestion{Text: prefix + e.Name(), Summary: "SRD " + e.Summary()})
	}
	return out
}
