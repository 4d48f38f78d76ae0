package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tavernkeep/internal/repository"
	"tavernkeep/internal/world"
)

const (
	maxCreateAttempts  = 10
	createAlternatives = 4
	moreSuggestions    = 10
)

type WorldCommandKind int

const (
	WorldCreate WorldCommandKind = iota
	WorldCreateMultiple
	WorldEdit
)

type WorldCommand struct {
	Kind   WorldCommandKind
	Parsed world.ParsedThing[world.Thing]
	// Name is the thing being edited.
	Name string
}

func (WorldCommand) isCommand() {}

func (c WorldCommand) String() string {
	switch c.Kind {
	case WorldCreateMultiple:
		return "more " + describe(c.Parsed.Thing)
	case WorldEdit:
		return fmt.Sprintf("%s is %s", c.Name, describe(c.Parsed.Thing))
	default:
		return "create " + describe(c.Parsed.Thing)
	}
}

// describe renders a diff as text that parses back to the same diff.
func describe(t world.Thing) string {
	desc := t.Description()
	name := t.NameField()
	if value, ok := name.Value(); ok && name.IsLocked() {
		desc += " named " + value
	}
	return desc
}

func (c WorldCommand) Run(ctx context.Context, input string, meta *AppMeta) (string, error) {
	switch c.Kind {
	case WorldCreateMultiple:
		return createMultiple(ctx, c.Parsed.Thing, meta)
	case WorldEdit:
		out, err := StorageCommand{
			Kind:   StorageChange,
			Change: repository.Edit{Name: c.Name, Diff: c.Parsed.Thing},
		}.Run(ctx, input, meta)
		if err != nil {
			return "", err
		}
		return appendUnknownWordsNotice(out, input, c.Parsed.UnknownWords), nil
	default:
		out, err := create(ctx, c.Parsed.Thing, meta)
		if err != nil {
			return "", err
		}
		return appendUnknownWordsNotice(out, input, c.Parsed.UnknownWords), nil
	}
}

func create(ctx context.Context, diff world.Thing, meta *AppMeta) (string, error) {
	repo := meta.Repository

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		t := meta.gen(diff)
		name, _ := world.Name(t)
		locked := t.NameField().IsLocked()

		var change repository.Change = repository.Create{Thing: t}
		if locked && repo.DataStoreEnabled() {
			change = repository.CreateAndSave{Thing: t}
		}

		if _, err := repo.Modify(ctx, change); err != nil {
			if errors.Is(err, repository.ErrNameConflict) && !locked {
				continue
			}
			return "", err
		}

		them := world.PronounsOf(t).Them()
		out := t.Details()
		if !locked {
			out += alternatives(ctx, diff, meta)
		}

		switch {
		case locked && repo.DataStoreEnabled():
			out += fmt.Sprintf("\n\n_Because you specified a name, %s has been automatically added to your `journal`. Use `delete %s` to remove %s._", name, name, them)
		case locked:
		case repo.DataStoreEnabled():
			out += fmt.Sprintf("\n\n_%s has not yet been saved. Use ~save~ to save %s to your `journal`. For more suggestions, type ~more~._", name, them)
			meta.Aliases.Insert(LiteralAlias("save", "save "+name, StorageCommand{Kind: StorageSave, Name: name}))
			insertMoreAlias(diff, meta)
		default:
			out += "\n\n_For more suggestions, type ~more~._"
			insertMoreAlias(diff, meta)
		}
		return out, nil
	}

	return "", fmt.Errorf("Couldn't create a unique %s name.", diff.Description())
}

// alternatives generates a few extra unsaved candidates, each loadable by
// typing its number.
func alternatives(ctx context.Context, diff world.Thing, meta *AppMeta) string {
	var b strings.Builder
	for i := 1; i <= createAlternatives; i++ {
		t, ok := createUnique(ctx, diff, meta)
		if !ok {
			break
		}
		if i == 1 {
			b.WriteString("\n\n_Alternatives:_")
		}
		fmt.Fprintf(&b, "\\\n~%d~ %s", i, t.Summary())
		insertLoadAlias(strconv.Itoa(i), t, meta)
	}
	return b.String()
}

func createMultiple(ctx context.Context, diff world.Thing, meta *AppMeta) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Alternative suggestions for %q", diff.Description())

	for i := 1; i <= moreSuggestions; i++ {
		t, ok := createUnique(ctx, diff, meta)
		if !ok {
			b.WriteString("\n\n! An error occurred generating additional results.")
			break
		}
		sep := "\\\n"
		if i == 1 {
			sep = "\n\n"
		}
		fmt.Fprintf(&b, "%s~%d~ %s", sep, i%10, t.Summary())
		insertLoadAlias(strconv.Itoa(i%10), t, meta)
	}

	insertMoreAlias(diff, meta)
	b.WriteString("\n\n_For even more suggestions, type ~more~._")
	return b.String(), nil
}

// createUnique generates and records an unsaved thing, retrying on name
// collisions.
func createUnique(ctx context.Context, diff world.Thing, meta *AppMeta) (world.Thing, bool) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		t := meta.gen(diff)
		if _, err := meta.Repository.Modify(ctx, repository.Create{Thing: t}); err == nil {
			return t, true
		}
	}
	return nil, false
}

func insertLoadAlias(term string, t world.Thing, meta *AppMeta) {
	name, _ := world.Name(t)
	meta.Aliases.Insert(LiteralAlias(term, "load "+name, StorageCommand{Kind: StorageLoad, Name: name}))
}

func insertMoreAlias(diff world.Thing, meta *AppMeta) {
	meta.Aliases.Insert(LiteralAlias("more", "create "+diff.Description(), WorldCommand{
		Kind:   WorldCreateMultiple,
		Parsed: world.ParsedThing[world.Thing]{Thing: diff},
	}))
}

func parseWorldCommand(input string, meta *AppMeta) (Command, []Command) {
	if rest, ok := strings.CutPrefix(input, "create "); ok {
		parsed, err := world.ParseThing(rest)
		if err != nil {
			return nil, nil
		}
		parsed.Shift(len(input) - len(rest))
		cmd := WorldCommand{Kind: WorldCreate, Parsed: parsed}
		if len(parsed.UnknownWords) == 0 {
			return cmd, nil
		}
		return nil, []Command{cmd}
	}

	if cmd, ok := parseEdit(input, meta); ok {
		return nil, []Command{cmd}
	}

	// Without the create keyword, a guess needs at least half of the
	// words recognized.
	parsed, err := world.ParseThing(input)
	if err != nil || 2*len(parsed.UnknownWords) > parsed.WordCount {
		return nil, nil
	}
	return nil, []Command{WorldCommand{Kind: WorldCreate, Parsed: parsed}}
}

// parseEdit recognizes "<name> is <description>".
func parseEdit(input string, meta *AppMeta) (WorldCommand, bool) {
	words := world.SplitWords(input)
	for i, w := range words {
		if i == 0 || w.Text != "is" {
			continue
		}

		name := strings.TrimSpace(input[:w.Start])
		after := input[w.End:]
		start := w.End + len(after) - len(strings.TrimLeft(after, " \t"))
		description := input[start:]

		var (
			parsed world.ParsedThing[world.Thing]
			err    error
		)
		if target, ok := meta.Repository.LoadThingByName(name); ok {
			name, _ = world.Name(target)
			parsed, err = world.ParseDiff(target, description)
		} else {
			// Unknown names still parse so that running reports them.
			parsed, err = world.ParseThing(description)
		}
		if err != nil {
			return WorldCommand{}, false
		}

		parsed.Shift(start)
		return WorldCommand{Kind: WorldEdit, Name: name, Parsed: parsed}, true
	}
	return WorldCommand{}, false
}

func autocompleteWorldCommand(input string, meta *AppMeta) []Suggestion {
	var out []Suggestion

	prefix, description := "", input
	if rest, ok := strings.CutPrefix(input, "create "); ok {
		prefix, description = "create ", rest
	}
	for _, c := range append(world.CompletePlace(description), world.CompleteNpc(description)...) {
		out = append(out, Suggestion{Text: prefix + c.Text, Summary: "create " + c.Thing.Description()})
	}

	return append(out, autocompleteEdit(input, meta)...)
}

func autocompleteEdit(input string, meta *AppMeta) []Suggestion {
	var out []Suggestion
	repo := meta.Repository
	words := world.SplitWords(input)

	for i := 1; i+1 < len(words); i++ {
		isWord, next := words[i], words[i+1]
		if isWord.Text != "is" {
			continue
		}
		t, ok := repo.LoadThingByName(strings.TrimSpace(input[:isWord.Start]))
		if !ok {
			break
		}

		noun := t.Kind().Noun()
		split := len(input) - len(strings.TrimLeft(input[isWord.End:], " \t"))
		for _, c := range completeKind(t, input[split:]) {
			out = append(out, Suggestion{Text: input[:split] + c.Text, Summary: "edit " + noun})
		}
		if world.IsArticle(words[len(words)-1].Text) && words[len(words)-1].End < len(input) {
			out = append(out, Suggestion{Text: input + "[" + noun + " description]", Summary: "edit " + noun})
		}
		if (next.Text == "named" || next.Text == "called") && i+2 < len(words) {
			out = append(out, Suggestion{Text: input, Summary: "rename " + noun})
		}
		break
	}

	if t, ok := repo.LoadThingByName(strings.TrimSpace(input)); ok {
		sep := " "
		if strings.TrimRight(input, " \t") != input {
			sep = ""
		}
		return append(out, Suggestion{
			Text:    fmt.Sprintf("%s%sis [%s description]", input, sep, t.Kind().Noun()),
			Summary: "edit " + t.Kind().Noun(),
		})
	}

	if len(words) < 2 {
		return out
	}
	last := words[len(words)-1]
	atEnd := last.End == len(input)

	if strings.HasPrefix("is", last.Text) {
		if t, ok := repo.LoadThingByName(strings.TrimSpace(input[:last.Start])); ok {
			noun := t.Kind().Noun()
			text := input + "[" + noun + " description]"
			if atEnd {
				text = input[:last.Start] + "is [" + noun + " description]"
			}
			out = append(out, Suggestion{Text: text, Summary: "edit " + noun})
		}
		return out
	}

	for _, verb := range []string{"named", "called"} {
		if !strings.HasPrefix(verb, last.Text) || len(words) < 3 || words[len(words)-2].Text != "is" {
			continue
		}
		secondLast := words[len(words)-2]
		if t, ok := repo.LoadThingByName(strings.TrimSpace(input[:secondLast.Start])); ok {
			text := input + "[name]"
			if atEnd {
				text = input[:last.Start] + verb + " [name]"
			}
			out = append(out, Suggestion{Text: text, Summary: "rename " + t.Kind().Noun()})
		}
		break
	}
	return out
}

func completeKind(t world.Thing, input string) []world.Completion {
	if t.Kind() == world.KindPlace {
		return world.CompletePlace(input)
	}
	return world.CompleteNpc(input)
}

const vocabularyHint = "Want to help improve its vocabulary? Suggest new words in the project's issue tracker!"

// appendUnknownWordsNotice echoes input with the unrecognized words in bold
// and underlined with carets.
func appendUnknownWordsNotice(out, input string, unknown []world.Range) string {
	if len(unknown) == 0 {
		return out
	}

	var b strings.Builder
	b.WriteString(out)
	b.WriteString("\n\n! tavernkeep doesn't know some of those words, but it did its best.\n\n\\> ")

	pos := 0
	for _, r := range unknown {
		b.WriteString(input[pos:r.Start])
		b.WriteString("**")
		b.WriteString(input[r.Start:r.End])
		b.WriteString("**")
		pos = r.End
	}
	b.WriteString(input[pos:])

	b.WriteString("\\\n\u00a0\u00a0")
	next := 0
	for i := range input {
		for next < len(unknown) && i >= unknown[next].End {
			next++
		}
		if next == len(unknown) {
			break
		}
		if i >= unknown[next].Start {
			b.WriteByte('^')
		} else {
			b.WriteString("\u00a0")
		}
	}

	b.WriteString("\\\n")
	b.WriteString(vocabularyHint)
	return b.String()
}
