package world

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Gender int

const (
	Masculine Gender = iota
	Feminine
	NonBinaryThey
	// Neuter is only used for places.
	Neuter
)

var genderNames = []string{"masculine", "feminine", "non-binary", "neuter"}

func (g Gender) String() string                { return enumName(genderNames, int(g)) }
func (g Gender) MarshalText() ([]byte, error)  { return []byte(g.String()), nil }
func (g *Gender) UnmarshalText(b []byte) error { return parseEnum(genderNames, "gender", b, (*int)(g)) }

// Pronouns returns the subject/object pair, eg. "she/her".
func (g Gender) Pronouns() string {
	switch g {
	case Masculine:
		return "he/him"
	case Feminine:
		return "she/her"
	case Neuter:
		return "it"
	default:
		return "they/them"
	}
}

func (g Gender) They() string   { return g.pick("he", "she", "they", "it") }
func (g Gender) Them() string   { return g.pick("him", "her", "them", "it") }
func (g Gender) Their() string  { return g.pick("his", "her", "their", "its") }
func (g Gender) Theyre() string { return g.pick("he's", "she's", "they're", "it's") }
func (g Gender) Theyve() string { return g.pick("he's", "she's", "they've", "it's") }

func (g Gender) TheyCap() string   { return capitalize(g.They()) }
func (g Gender) TheyreCap() string { return capitalize(g.Theyre()) }

// Conjugate picks the verb form agreeing with the pronoun: singular for
// he/she, plural for they.
func (g Gender) Conjugate(singular, plural string) string {
	return g.pick(singular, singular, plural, singular)
}

func (g Gender) pick(masculine, feminine, they, it string) string {
	switch g {
	case Masculine:
		return masculine
	case Feminine:
		return feminine
	case Neuter:
		return it
	default:
		return they
	}
}

type Age int

const (
	Infant Age = iota
	Child
	Adolescent
	YoungAdult
	Adult
	MiddleAged
	Elderly
	Geriatric
)

var ageNames = []string{"infant", "child", "adolescent", "young adult", "adult", "middle-aged", "elderly", "geriatric"}

func (a Age) String() string                { return enumName(ageNames, int(a)) }
func (a Age) MarshalText() ([]byte, error)  { return []byte(a.String()), nil }
func (a *Age) UnmarshalText(b []byte) error { return parseEnum(ageNames, "age", b, (*int)(a)) }

// adjective is the single-word form used in descriptions so that every
// description parses back to the same attributes.
func (a Age) adjective() string {
	if a == YoungAdult {
		return "young"
	}
	return a.String()
}

// noun describes a person of this age when no species is known.
func (a Age) noun() string {
	switch a {
	case Infant, Child, Adolescent, Adult:
		return a.String()
	default:
		return a.adjective() + " person"
	}
}

type Species int

const (
	Dragonborn Species = iota
	Dwarf
	Elf
	Gnome
	HalfElf
	HalfOrc
	Halfling
	Human
	Tiefling
)

var speciesNames = []string{"dragonborn", "dwarf", "elf", "gnome", "half-elf", "half-orc", "halfling", "human", "tiefling"}

// AllSpecies lists every species in declaration order.
func AllSpecies() []Species {
	all := make([]Species, len(speciesNames))
	for i := range all {
		all[i] = Species(i)
	}
	return all
}

func (s Species) String() string                { return enumName(speciesNames, int(s)) }
func (s Species) MarshalText() ([]byte, error)  { return []byte(s.String()), nil }
func (s *Species) UnmarshalText(b []byte) error { return parseEnum(speciesNames, "species", b, (*int)(s)) }

// ParseSpecies resolves a species name, case-insensitively.
func ParseSpecies(name string) (Species, bool) {
	var s Species
	if err := s.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return 0, false
	}
	return s, true
}

// Npc is a generated character.
type Npc struct {
	UUID    uuid.UUID      `json:"uuid"`
	Name    Field[string]  `json:"name"`
	Gender  Field[Gender]  `json:"gender"`
	Age     Field[Age]     `json:"age"`
	Species Field[Species] `json:"species"`
}

func (n *Npc) isThing() {}

func (n *Npc) Kind() Kind                { return KindNpc }
func (n *Npc) ID() uuid.UUID             { return n.UUID }
func (n *Npc) SetID(id uuid.UUID)        { n.UUID = id }
func (n *Npc) NameField() *Field[string] { return &n.Name }

func (n *Npc) Clone() Thing {
	c := *n
	return &c
}

// GenderOr returns the npc's gender, defaulting to singular they.
func (n *Npc) GenderOr() Gender {
	return n.Gender.ValueOr(NonBinaryThey)
}

// Description summarises the known attributes, eg. "elderly elf, she/her".
// Parsing the description yields the same attributes.
func (n *Npc) Description() string {
	var noun string
	species, hasSpecies := n.Species.Value()
	age, hasAge := n.Age.Value()
	switch {
	case hasSpecies && hasAge:
		noun = age.adjective() + " " + species.String()
	case hasSpecies:
		noun = species.String()
	case hasAge:
		noun = age.noun()
	default:
		noun = "person"
	}
	if gender, ok := n.Gender.Value(); ok {
		noun += ", " + gender.Pronouns()
	}
	return noun
}

func (n *Npc) Summary() string {
	name, ok := n.Name.Value()
	if !ok {
		return n.Description()
	}
	return fmt.Sprintf("`%s` (%s)", name, n.Description())
}

func (n *Npc) Details() string {
	var b strings.Builder
	if name, ok := n.Name.Value(); ok {
		fmt.Fprintf(&b, "# %s\n", name)
	}
	fmt.Fprintf(&b, "*%s*", n.Description())

	var rows []string
	if species, ok := n.Species.Value(); ok {
		rows = append(rows, fmt.Sprintf("**Species:** %s", species))
	}
	if age, ok := n.Age.Value(); ok {
		rows = append(rows, fmt.Sprintf("**Age:** %s", age))
	}
	if gender, ok := n.Gender.Value(); ok {
		rows = append(rows, fmt.Sprintf("**Gender:** %s (%s)", gender, gender.Pronouns()))
	}
	if len(rows) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.Join(rows, "\\\n"))
	}
	return b.String()
}

// apply copies every attribute present in diff onto n, locking it.
func (n *Npc) apply(diff *Npc) {
	applyField(&n.Name, diff.Name)
	applyField(&n.Gender, diff.Gender)
	applyField(&n.Age, diff.Age)
	applyField(&n.Species, diff.Species)
}

func applyField[T any](dst *Field[T], src Field[T]) {
	if value, ok := src.Value(); ok {
		*dst = NewField(value)
	}
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(names []string, kind string, b []byte, dst *int) error {
	for i, name := range names {
		if name == string(b) {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", kind, string(b))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
