package app

import (
	"context"
	"sort"
	"strings"
)

// MaxSuggestions bounds the result of App.Autocomplete.
const MaxSuggestions = 10

// Command is a parsed input ready to run. The set of implementations is
// closed: CommandAlias, AppCommand, TutorialCommand, TimeCommand,
// ReferenceCommand, StorageCommand and WorldCommand.
type Command interface {
	Run(ctx context.Context, input string, meta *AppMeta) (string, error)
	// String is the canonical input that parses back to this command.
	String() string
	isCommand()
}

// Suggestion is an autocomplete entry: the full input text and a short
// summary of what it does.
type Suggestion struct {
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

type commandFamily struct {
	name         string
	parse        func(input string, meta *AppMeta) (exact Command, fuzzy []Command)
	autocomplete func(input string, meta *AppMeta) []Suggestion
}

// commandFamilies lists every family in precedence order.
func commandFamilies() []commandFamily {
	return []commandFamily{
		{"alias", parseAlias, autocompleteAlias},
		{"app", parseAppCommand, autocompleteAppCommand},
		{"tutorial", parseTutorialCommand, autocompleteTutorialCommand},
		{"time", parseTimeCommand, autocompleteTimeCommand},
		{"reference", parseReferenceCommand, autocompleteReferenceCommand},
		{"storage", parseStorageCommand, autocompleteStorageCommand},
		{"world", parseWorldCommand, autocompleteWorldCommand},
	}
}

// parse offers input to each family in turn. The first exact match wins;
// fuzzy matches from every family consulted up to that point are kept.
func parse(input string, meta *AppMeta) (Command, []Command) {
	var fuzzy []Command
	for _, family := range commandFamilies() {
		exact, matches := family.parse(input, meta)
		fuzzy = append(fuzzy, matches...)
		if exact != nil {
			return exact, fuzzy
		}
	}
	return nil, fuzzy
}

// parseIrrefutable always yields something runnable, falling back to an
// ambiguity or unknown-command report.
func parseIrrefutable(input string, meta *AppMeta) Command {
	exact, fuzzy := parse(input, meta)
	switch {
	case exact != nil:
		return exact
	case len(fuzzy) == 1:
		return fuzzy[0]
	case len(fuzzy) > 1:
		return AppCommand{Kind: AppAmbiguous, Input: input, Options: fuzzy}
	default:
		return AppCommand{Kind: AppUnknown, Input: input}
	}
}

func autocomplete(input string, meta *AppMeta) []Suggestion {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []Suggestion
	for _, family := range commandFamilies() {
		for _, s := range family.autocomplete(input, meta) {
			if seen[s.Text] {
				continue
			}
			seen[s.Text] = true
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Text < out[j].Text })
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// hasWordPrefix reports whether candidate starts with input, compared
// case-insensitively, and input is non-empty.
func hasWordPrefix(candidate, input string) bool {
	return input != "" && strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(input))
}

// cutCommand splits "verb rest" when the first word is verb.
func cutCommand(input, verb string) (string, bool) {
	rest, ok := strings.CutPrefix(input, verb+" ")
	if !ok {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	return rest, rest != ""
}
