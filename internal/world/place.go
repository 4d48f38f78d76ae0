package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// PlaceType is the canonical name of a kind of place, eg. "inn".
type PlaceType string

type placeCategory int

const (
	categoryBuilding placeCategory = iota
	categoryBusiness
	categoryReligious
	categoryMilitary
	categoryGeographical
	categorySettlement
	categoryLandmark
)

type placeTypeInfo struct {
	category placeCategory
	aliases  []string
}

var placeTypes = map[PlaceType]placeTypeInfo{
	"abbey":      {categoryReligious, nil},
	"bakery":     {categoryBusiness, nil},
	"bank":       {categoryBusiness, nil},
	"barony":     {categorySettlement, nil},
	"barracks":   {categoryMilitary, nil},
	"barrens":    {categoryGeographical, nil},
	"base":       {categoryMilitary, nil},
	"bathhouse":  {categoryBusiness, nil},
	"beach":      {categoryGeographical, nil},
	"blacksmith": {categoryBusiness, []string{"smithy"}},
	"brewery":    {categoryBusiness, nil},
	"bridge":     {categoryLandmark, nil},
	"building":   {categoryBuilding, nil},
	"business":   {categoryBusiness, nil},
	"castle":     {categoryMilitary, nil},
	"cemetery":   {categoryReligious, []string{"graveyard", "necropolis"}},
	"city":       {categorySettlement, nil},
	"crypt":      {categoryReligious, nil},
	"farm":       {categoryBusiness, nil},
	"forest":     {categoryGeographical, []string{"woods"}},
	"fort":       {categoryMilitary, []string{"fortress"}},
	"inn":        {categoryBusiness, []string{"hotel", "lodge"}},
	"library":    {categoryBuilding, nil},
	"lighthouse": {categoryLandmark, nil},
	"market":     {categoryBusiness, []string{"marketplace"}},
	"monastery":  {categoryReligious, []string{"hermitage", "nunnery"}},
	"mountain":   {categoryGeographical, nil},
	"prison":     {categoryBuilding, []string{"jail"}},
	"shop":       {categoryBusiness, []string{"store"}},
	"shrine":     {categoryReligious, nil},
	"tavern":     {categoryBusiness, []string{"bar", "pub", "saloon"}},
	"temple":     {categoryReligious, []string{"church", "mosque", "synagogue"}},
	"tomb":       {categoryReligious, nil},
	"tower":      {categoryLandmark, nil},
	"town":       {categorySettlement, nil},
	"village":    {categorySettlement, []string{"hamlet"}},
}

// placeWords maps every accepted word to its canonical type.
var placeWords = func() map[string]PlaceType {
	words := make(map[string]PlaceType)
	for pt, info := range placeTypes {
		words[string(pt)] = pt
		for _, alias := range info.aliases {
			words[alias] = pt
		}
	}
	return words
}()

// ParsePlaceType resolves a place type or one of its aliases.
func ParsePlaceType(word string) (PlaceType, bool) {
	pt, ok := placeWords[strings.ToLower(word)]
	return pt, ok
}

// PlaceTypes lists every canonical place type, sorted.
func PlaceTypes() []PlaceType {
	all := make([]PlaceType, 0, len(placeTypes))
	for pt := range placeTypes {
		all = append(all, pt)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

func (pt PlaceType) String() string { return string(pt) }

func (pt PlaceType) category() placeCategory {
	return placeTypes[pt].category
}

// Place is a generated location.
type Place struct {
	UUID    uuid.UUID        `json:"uuid"`
	Name    Field[string]    `json:"name"`
	Subtype Field[PlaceType] `json:"subtype"`
}

func (p *Place) isThing() {}

func (p *Place) Kind() Kind                { return KindPlace }
func (p *Place) ID() uuid.UUID             { return p.UUID }
func (p *Place) SetID(id uuid.UUID)        { p.UUID = id }
func (p *Place) NameField() *Field[string] { return &p.Name }

func (p *Place) Clone() Thing {
	c := *p
	return &c
}

// Description is the place's type, or "place" when unknown.
func (p *Place) Description() string {
	if subtype, ok := p.Subtype.Value(); ok {
		return subtype.String()
	}
	return "place"
}

func (p *Place) Summary() string {
	name, ok := p.Name.Value()
	if !ok {
		return p.Description()
	}
	return fmt.Sprintf("`%s` (%s)", name, p.Description())
}

func (p *Place) Details() string {
	var b strings.Builder
	if name, ok := p.Name.Value(); ok {
		fmt.Fprintf(&b, "# %s\n", name)
	}
	fmt.Fprintf(&b, "*%s*", p.Description())
	return b.String()
}

func (p *Place) apply(diff *Place) {
	applyField(&p.Name, diff.Name)
	applyField(&p.Subtype, diff.Subtype)
}
