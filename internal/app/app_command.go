package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"

	"tavernkeep/internal/dice"
)

type AppCommandKind int

const (
	AppAbout AppCommandKind = iota
	AppHelp
	AppDebug
	AppRoll
	AppUnknown
	AppAmbiguous
)

// AppCommand covers commands about the application itself, plus the
// reports produced when input can't be resolved to a single command.
type AppCommand struct {
	Kind    AppCommandKind
	Input   string
	Dice    dice.Expression
	Options []Command
}

func (AppCommand) isCommand() {}

func (c AppCommand) String() string {
	switch c.Kind {
	case AppAbout:
		return "about"
	case AppHelp:
		return "help"
	case AppDebug:
		return "debug"
	case AppRoll:
		return "roll " + c.Dice.String()
	default:
		return c.Input
	}
}

const didYouMeanThreshold = 0.8

func (c AppCommand) Run(_ context.Context, _ string, meta *AppMeta) (string, error) {
	switch c.Kind {
	case AppAbout:
		return aboutText, nil
	case AppHelp:
		return helpText, nil
	case AppDebug:
		return debugOutput(meta), nil
	case AppRoll:
		return c.Dice.Roll(meta.Rng).String(), nil
	case AppAmbiguous:
		var b strings.Builder
		b.WriteString("There are several possible interpretations of this command. Did you mean:\n")
		for _, option := range c.Options {
			fmt.Fprintf(&b, "\n* `%s`", option.String())
		}
		return "", errors.New(b.String())
	default:
		msg := fmt.Sprintf("Unknown command: %q", c.Input)
		if hint, ok := suggestCorrection(c.Input, meta); ok {
			msg += fmt.Sprintf("\n\nDid you mean ~%s~?", hint)
		}
		return "", errors.New(msg)
	}
}

func parseAppCommand(input string, _ *AppMeta) (Command, []Command) {
	switch input {
	case "about":
		return AppCommand{Kind: AppAbout}, nil
	case "help":
		return AppCommand{Kind: AppHelp}, nil
	case "debug":
		return AppCommand{Kind: AppDebug}, nil
	}

	expression := input
	if rest, ok := cutCommand(input, "roll"); ok {
		expression = rest
	}
	if expr, err := dice.Parse(expression); err == nil {
		return AppCommand{Kind: AppRoll, Dice: expr}, nil
	}
	return nil, nil
}

func autocompleteAppCommand(input string, _ *AppMeta) []Suggestion {
	var out []Suggestion
	for _, s := range []Suggestion{
		{Text: "about", Summary: "about tavernkeep"},
		{Text: "help", Summary: "how to use tavernkeep"},
		{Text: "roll [dice]", Summary: "roll eg. 8d6 or d20+3"},
	} {
		if hasWordPrefix(s.Text, input) {
			out = append(out, s)
		}
	}

	expression := input
	if rest, ok := cutCommand(input, "roll"); ok {
		expression = rest
	}
	if expr, err := dice.Parse(expression); err == nil {
		out = append(out, Suggestion{Text: input, Summary: "roll " + expr.String()})
	}
	return out
}

// commandWords are the fixed keywords offered as corrections for typos.
var commandWords = []string{
	"about", "create", "date", "debug", "delete", "export", "help", "journal",
	"load", "now", "roll", "save", "spell", "spells", "time", "tutorial", "weapons",
}

// suggestCorrection replaces the first word of input with the closest
// known keyword, if any is close enough.
func suggestCorrection(input string, meta *AppMeta) (string, bool) {
	first, rest, _ := strings.Cut(strings.TrimSpace(input), " ")
	first = strings.ToLower(first)
	if first == "" {
		return "", false
	}

	candidates := append([]string(nil), commandWords...)
	for _, alias := range meta.Aliases.All() {
		if !alias.IsWildcard() {
			candidates = append(candidates, alias.Term)
		}
	}

	best, bestScore := "", 0.0
	for _, word := range candidates {
		if word == first {
			continue
		}
		if score := matchr.JaroWinkler(first, word, false); score > bestScore {
			best, bestScore = word, score
		}
	}
	if bestScore < didYouMeanThreshold {
		return "", false
	}
	if rest != "" {
		return best + " " + rest, true
	}
	return best, true
}

func debugOutput(meta *AppMeta) string {
	var aliases []string
	for _, a := range meta.Aliases.All() {
		if a.IsWildcard() {
			aliases = append(aliases, "(any input)")
		} else {
			aliases = append(aliases, "`"+a.Term+"`")
		}
	}
	if len(aliases) == 0 {
		aliases = append(aliases, "none")
	}

	store := "disabled"
	if meta.Repository.DataStoreEnabled() {
		store = "enabled"
	}

	return fmt.Sprintf("# Debug\n\n**Time:** %s\\\n**Data store:** %s\\\n**Journal entries:** %d\\\n**Recent entries:** %d\\\n**Aliases:** %s",
		meta.Repository.Time().Short(),
		store,
		len(meta.Repository.Journal()),
		len(meta.Repository.Recent()),
		strings.Join(aliases, ", "))
}

const aboutText = "# About tavernkeep\n\n" +
	"tavernkeep is a toolkit for game masters who run tabletop role-playing games. " +
	"It invents characters and places the moment your players ask about them, keeps track of the ones " +
	"worth remembering, and answers rules questions without leaving the keyboard.\n\n" +
	"Spell and weapon descriptions are taken from the System Reference Document 5.1, " +
	"available under the Creative Commons Attribution 4.0 license."

const helpText = "# Help\n\n" +
	"Type a description to invent something, eg. ~elderly elf~, ~inn~ or ~a tiefling named Vex~. " +
	"Prefix it with `create` to skip the guesswork.\n\n" +
	"* ~journal~ lists everything you've saved.\n" +
	"* `save [name]`, `load [name]` and `delete [name]` manage individual entries.\n" +
	"* `[name] is [description]` changes an existing character or place.\n" +
	"* ~export~ prints a backup of your journal.\n" +
	"* ~time~ shows the time in your world; `+30m` or `-1d` moves it.\n" +
	"* `roll [dice]`, or just ~d20+4~, rolls some dice.\n" +
	"* ~spells~, ~weapons~ or the name of a spell looks up reference material.\n" +
	"* ~tutorial~ walks you through all of the above."
