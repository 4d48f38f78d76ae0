package world

import (
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnrecognized is returned when no word of a description is understood.
var ErrUnrecognized = errors.New("no recognized words")

// Range is a half-open byte range into a parsed input.
type Range struct {
	Start int
	End   int
}

// Word is a whitespace-delimited token. A double-quoted phrase forms a
// single word whose Text excludes the quotes and whose range includes them.
type Word struct {
	Text  string
	Start int
	End   int
}

func (w Word) Range() Range { return Range{Start: w.Start, End: w.End} }

// SplitWords tokenizes input, keeping quoted phrases together.
func SplitWords(input string) []Word {
	var words []Word
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		if r == '"' {
			if end := strings.IndexByte(input[i+1:], '"'); end >= 0 {
				closing := i + 1 + end
				words = append(words, Word{Text: input[i+1 : closing], Start: start, End: closing + 1})
				i = closing + 1
				continue
			}
		}

		for i < len(input) {
			r, size := utf8.DecodeRuneInString(input[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		words = append(words, Word{Text: input[start:i], Start: start, End: i})
	}
	return words
}

// ParsedThing is a partial description of a thing together with the spans
// of input that were not understood.
type ParsedThing[T Thing] struct {
	Thing        T
	UnknownWords []Range
	WordCount    int
}

// Generic widens the parsed thing to the Thing interface.
func (p ParsedThing[T]) Generic() ParsedThing[Thing] {
	return ParsedThing[Thing]{Thing: p.Thing, UnknownWords: p.UnknownWords, WordCount: p.WordCount}
}

// Shift moves every unknown word range n bytes to the right, for when the
// parsed text was a suffix of a longer input.
func (p *ParsedThing[T]) Shift(n int) {
	for i := range p.UnknownWords {
		p.UnknownWords[i].Start += n
		p.UnknownWords[i].End += n
	}
}

var articles = map[string]bool{"a": true, "an": true}

var namingWords = map[string]bool{"named": true, "called": true}

var genericNpcWords = map[string]bool{
	"npc":       true,
	"person":    true,
	"character": true,
	"someone":   true,
}

var genericPlaceWords = map[string]bool{
	"place":    true,
	"location": true,
}

var npcAgeWords = map[string]Age{
	"infant":      Infant,
	"baby":        Infant,
	"child":       Child,
	"kid":         Child,
	"adolescent":  Adolescent,
	"teen":        Adolescent,
	"teenager":    Adolescent,
	"young":       YoungAdult,
	"adult":       Adult,
	"middle-aged": MiddleAged,
	"elderly":     Elderly,
	"old":         Elderly,
	"geriatric":   Geriatric,
}

var npcGenderWords = map[string]Gender{
	"he":         Masculine,
	"him":        Masculine,
	"he/him":     Masculine,
	"male":       Masculine,
	"masculine":  Masculine,
	"she":        Feminine,
	"her":        Feminine,
	"she/her":    Feminine,
	"female":     Feminine,
	"feminine":   Feminine,
	"they":       NonBinaryThey,
	"them":       NonBinaryThey,
	"they/them":  NonBinaryThey,
	"enby":       NonBinaryThey,
	"nonbinary":  NonBinaryThey,
	"non-binary": NonBinaryThey,
}

var npcSpeciesWords = map[string]Species{
	"dragonborn": Dragonborn,
	"dwarf":      Dwarf,
	"dwarven":    Dwarf,
	"dwarvish":   Dwarf,
	"elf":        Elf,
	"elvish":     Elf,
	"gnome":      Gnome,
	"gnomish":    Gnome,
	"half-elf":   HalfElf,
	"half-orc":   HalfOrc,
	"halfling":   Halfling,
	"human":      Human,
	"tiefling":   Tiefling,
}

// Words that imply both an age and a gender.
var npcPersonWords = map[string]struct {
	age    Age
	gender Gender
}{
	"boy":   {Child, Masculine},
	"girl":  {Child, Feminine},
	"man":   {Adult, Masculine},
	"woman": {Adult, Feminine},
}

func (n *Npc) applyWord(word string) bool {
	if genericNpcWords[word] {
		return true
	}
	if age, ok := npcAgeWords[word]; ok {
		n.Age = NewField(age)
		return true
	}
	if gender, ok := npcGenderWords[word]; ok {
		n.Gender = NewField(gender)
		return true
	}
	if species, ok := npcSpeciesWords[word]; ok {
		n.Species = NewField(species)
		return true
	}
	if person, ok := npcPersonWords[word]; ok {
		n.Age = NewField(person.age)
		n.Gender = NewField(person.gender)
		return true
	}
	return false
}

func (p *Place) applyWord(word string) bool {
	if genericPlaceWords[word] {
		return true
	}
	if pt, ok := placeWords[word]; ok {
		p.Subtype = NewField(pt)
		return true
	}
	return false
}

// ParseNpc interprets input as a description of a character, eg.
// "an elderly elf named Lirael".
func ParseNpc(input string) (ParsedThing[*Npc], error) {
	npc := &Npc{}
	parsed, err := parseDescription(input, npc, npc.applyWord)
	return ParsedThing[*Npc]{Thing: npc, UnknownWords: parsed.UnknownWords, WordCount: parsed.WordCount}, err
}

// ParsePlace interprets input as a description of a place, eg. "inn".
func ParsePlace(input string) (ParsedThing[*Place], error) {
	place := &Place{}
	parsed, err := parseDescription(input, place, place.applyWord)
	return ParsedThing[*Place]{Thing: place, UnknownWords: parsed.UnknownWords, WordCount: parsed.WordCount}, err
}

// ParseThing picks whichever interpretation of input leaves fewer words
// unknown, preferring a character on a tie.
func ParseThing(input string) (ParsedThing[Thing], error) {
	npc, npcErr := ParseNpc(input)
	place, placeErr := ParsePlace(input)

	switch {
	case npcErr != nil && placeErr != nil:
		return ParsedThing[Thing]{}, npcErr
	case npcErr != nil:
		return place.Generic(), nil
	case placeErr != nil:
		return npc.Generic(), nil
	case len(place.UnknownWords) < len(npc.UnknownWords):
		return place.Generic(), nil
	default:
		return npc.Generic(), nil
	}
}

// ParseDiff interprets input as attributes of the same kind as t, falling
// back to either kind.
func ParseDiff(t Thing, input string) (ParsedThing[Thing], error) {
	switch t.(type) {
	case *Npc:
		if parsed, err := ParseNpc(input); err == nil {
			return parsed.Generic(), nil
		}
	case *Place:
		if parsed, err := ParsePlace(input); err == nil {
			return parsed.Generic(), nil
		}
	}
	return ParseThing(input)
}

type parseResult struct {
	UnknownWords []Range
	WordCount    int
}

func parseDescription(input string, t Thing, apply func(word string) bool) (parseResult, error) {
	var (
		result     parseResult
		recognized bool
	)

	for _, w := range SplitWords(input) {
		word := strings.ToLower(strings.TrimRight(w.Text, ".,;:!?"))
		if articles[word] {
			continue
		}

		result.WordCount++

		if namingWords[word] {
			if name := strings.Trim(strings.TrimSpace(input[w.End:]), `"`); name != "" {
				*t.NameField() = NewField(name)
				recognized = true
				break
			}
		}

		if apply(word) {
			recognized = true
		} else {
			result.UnknownWords = append(result.UnknownWords, w.Range())
		}
	}

	if !recognized {
		return result, ErrUnrecognized
	}
	return result, nil
}

// Completion is a suggested way of finishing a description.
type Completion struct {
	Text  string
	Thing Thing
}

var (
	npcVocabulary = vocabulary(
		keys(genericNpcWords), keys(npcAgeWords), keys(npcGenderWords),
		keys(npcSpeciesWords), keys(npcPersonWords),
	)
	placeVocabulary = vocabulary(keys(genericPlaceWords), keys(placeWords))
)

// CompleteNpc suggests character words finishing the last word of input.
func CompleteNpc(input string) []Completion {
	return complete(input, npcVocabulary, func(s string) (Thing, bool) {
		parsed, err := ParseNpc(s)
		return parsed.Thing, err == nil && len(parsed.UnknownWords) == 0
	})
}

// CompletePlace suggests place words finishing the last word of input.
func CompletePlace(input string) []Completion {
	return complete(input, placeVocabulary, func(s string) (Thing, bool) {
		parsed, err := ParsePlace(s)
		return parsed.Thing, err == nil && len(parsed.UnknownWords) == 0
	})
}

// complete keeps only completions that parse with every word recognized.
func complete(input string, words []string, parse func(string) (Thing, bool)) []Completion {
	tokens := SplitWords(input)
	if len(tokens) == 0 || tokens[len(tokens)-1].End != len(input) {
		return nil
	}
	last := tokens[len(tokens)-1]
	prefix := strings.ToLower(last.Text)

	var completions []Completion
	for _, word := range words {
		if !strings.HasPrefix(word, prefix) {
			continue
		}
		text := input[:last.Start] + word
		thing, ok := parse(text)
		if !ok {
			continue
		}
		completions = append(completions, Completion{Text: text, Thing: thing})
	}
	return completions
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func vocabulary(tables ...[]string) []string {
	var words []string
	for _, table := range tables {
		words = append(words, table...)
	}
	sort.Strings(words)
	return words
}

// IsArticle reports whether word is "a" or "an".
func IsArticle(word string) bool {
	return articles[strings.ToLower(word)]
}
