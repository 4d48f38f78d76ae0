package world

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Demographics weights the species of generated characters.
type Demographics struct {
	species []Species
	weights []int
	total   int
}

// DefaultDemographics is a human-majority population.
func DefaultDemographics() Demographics {
	d, _ := NewDemographics(map[Species]int{
		Human:      60,
		Dwarf:      8,
		Elf:        8,
		Halfling:   8,
		Gnome:      4,
		HalfElf:    4,
		HalfOrc:    3,
		Dragonborn: 3,
		Tiefling:   2,
	})
	return d
}

// NewDemographics validates a set of species weights.
func NewDemographics(weights map[Species]int) (Demographics, error) {
	var d Demographics
	for species, weight := range weights {
		if weight <= 0 {
			return Demographics{}, fmt.Errorf("species %s: weight must be positive, got %d", species, weight)
		}
		d.species = append(d.species, species)
	}
	if len(d.species) == 0 {
		return Demographics{}, fmt.Errorf("demographics: at least one species is required")
	}
	sort.Slice(d.species, func(i, j int) bool { return d.species[i] < d.species[j] })
	for _, species := range d.species {
		d.weights = append(d.weights, weights[species])
		d.total += weights[species]
	}
	return d, nil
}

// Weights returns a copy of the species weights.
func (d Demographics) Weights() map[Species]int {
	out := make(map[Species]int, len(d.species))
	for i, species := range d.species {
		out[species] = d.weights[i]
	}
	return out
}

func (d Demographics) pickSpecies(rng *rand.Rand) Species {
	if d.total == 0 {
		return Human
	}
	return d.species[weightedIndex(rng, d.weights, d.total)]
}

var (
	ageWeights    = []int{1, 5, 5, 15, 30, 20, 10, 3}
	genderWeights = []int{48, 48, 4}
)

// Regenerate fills every unlocked attribute of t with random values.
func Regenerate(t Thing, rng *rand.Rand, d Demographics) {
	switch t := t.(type) {
	case *Npc:
		t.Regenerate(rng, d)
	case *Place:
		t.Regenerate(rng)
	}
}

func (n *Npc) Regenerate(rng *rand.Rand, d Demographics) {
	n.Species.Replace(d.pickSpecies(rng))
	n.Age.Replace(Age(weightedIndex(rng, ageWeights, sum(ageWeights))))
	n.Gender.Replace(Gender(weightedIndex(rng, genderWeights, sum(genderWeights))))

	species := n.Species.ValueOr(Human)
	gender := n.Gender.ValueOr(NonBinaryThey)
	n.Name.Replace(npcName(rng, species, gender))
}

func (p *Place) Regenerate(rng *rand.Rand) {
	types := PlaceTypes()
	p.Subtype.Replace(types[rng.IntN(len(types))])
	if subtype, ok := p.Subtype.Value(); ok {
		p.Name.Replace(placeName(rng, subtype))
	} else {
		p.Name.Replace(placeName(rng, "building"))
	}
}

func npcName(rng *rand.Rand, species Species, gender Gender) string {
	table, ok := nameTables[species]
	if !ok {
		table = nameTables[Human]
	}

	var first []string
	switch gender {
	case Masculine:
		first = table.masculine
	case Feminine:
		first = table.feminine
	default:
		first = table.feminine
		if rng.IntN(len(table.masculine)+len(table.feminine)) < len(table.masculine) {
			first = table.masculine
		}
	}

	name := pick(rng, first)
	if len(table.family) > 0 {
		name += " " + pick(rng, table.family)
	}
	return name
}

func placeName(rng *rand.Rand, subtype PlaceType) string {
	title := capitalize(subtype.String())
	switch subtype.category() {
	case categoryBusiness:
		if subtype == "inn" || subtype == "tavern" {
			return fmt.Sprintf("The %s %s", pick(rng, placeAdjectives), pick(rng, tavernNouns))
		}
		return fmt.Sprintf("%s's %s", pick(rng, nameTables[Human].family), title)
	case categoryReligious:
		return fmt.Sprintf("%s of the %s", title, pick(rng, religiousPatrons))
	case categorySettlement:
		return pick(rng, settlementPrefixes) + pick(rng, settlementSuffixes)
	default:
		return fmt.Sprintf("The %s %s", pick(rng, placeAdjectives), title)
	}
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.IntN(len(options))]
}

func weightedIndex(rng *rand.Rand, weights []int, total int) int {
	n := rng.IntN(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
