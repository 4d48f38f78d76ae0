package world

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Kind int

const (
	KindNpc Kind = iota
	KindPlace
)

func (k Kind) String() string {
	if k == KindPlace {
		return "place"
	}
	return "npc"
}

// Noun is the word used for this kind in user-facing hints.
func (k Kind) Noun() string {
	if k == KindPlace {
		return "place"
	}
	return "character"
}

// Thing is a generated entity: either an *Npc or a *Place.
type Thing interface {
	Kind() Kind
	// ID is uuid.Nil until the thing has been saved.
	ID() uuid.UUID
	SetID(id uuid.UUID)
	NameField() *Field[string]
	Description() string
	Summary() string
	Details() string
	Clone() Thing
	isThing()
}

// Name returns the thing's name, if it has one.
func Name(t Thing) (string, bool) {
	return t.NameField().Value()
}

// NameEquals reports whether t is named name, ignoring case.
func NameEquals(t Thing, name string) bool {
	n, ok := Name(t)
	return ok && strings.EqualFold(n, name)
}

// PronounsOf returns the grammatical gender to use when referring to t.
func PronounsOf(t Thing) Gender {
	if npc, ok := t.(*Npc); ok {
		return npc.GenderOr()
	}
	return Neuter
}

// Apply copies every attribute present in diff onto t. The two must be of
// the same kind.
func Apply(t, diff Thing) error {
	switch t := t.(type) {
	case *Npc:
		d, ok := diff.(*Npc)
		if !ok {
			return fmt.Errorf("cannot apply %s attributes to a %s", diff.Kind(), t.Kind())
		}
		t.apply(d)
	case *Place:
		d, ok := diff.(*Place)
		if !ok {
			return fmt.Errorf("cannot apply %s attributes to a %s", diff.Kind(), t.Kind())
		}
		t.apply(d)
	}
	return nil
}

// MarshalThing encodes t with a "type" discriminator.
func MarshalThing(t Thing) ([]byte, error) {
	return json.Marshal(t)
}

// UnmarshalThing decodes a document written by MarshalThing.
func UnmarshalThing(data []byte) (Thing, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding thing: %w", err)
	}

	var t Thing
	switch envelope.Type {
	case "npc":
		t = &Npc{}
	case "place":
		t = &Place{}
	default:
		return nil, fmt.Errorf("decoding thing: unknown type %q", envelope.Type)
	}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", envelope.Type, err)
	}
	return t, nil
}

type npcJSON Npc

func (n *Npc) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		*npcJSON
	}{"npc", (*npcJSON)(n)})
}

func (n *Npc) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, (*npcJSON)(n))
}

type placeJSON Place

func (p *Place) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		*placeJSON
	}{"place", (*placeJSON)(p)})
}

func (p *Place) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, (*placeJSON)(p))
}
