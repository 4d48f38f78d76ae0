package app

import (
	"context"
	"sort"
	"strings"
)

const wildcardKey = ""

// CommandAlias is a shortcut installed by a previous command. A literal alias
// matches one exact term; a strict wildcard matches whatever is typed next.
type CommandAlias struct {
	Term     string
	Summary  string
	Command  Command
	wildcard bool
}

func LiteralAlias(term, summary string, cmd Command) CommandAlias {
	return CommandAlias{Term: term, Summary: summary, Command: cmd}
}

func StrictWildcardAlias(cmd Command) CommandAlias {
	return CommandAlias{Command: cmd, wildcard: true}
}

func (a CommandAlias) IsWildcard() bool { return a.wildcard }

func (a CommandAlias) key() string {
	if a.wildcard {
		return wildcardKey
	}
	return a.Term
}

func (CommandAlias) isCommand() {}

func (a CommandAlias) String() string {
	if a.wildcard {
		return a.Command.String()
	}
	return a.Term
}

// Run swaps the alias set out, runs the wrapped command and then restores
// the old set. If the command installed aliases of its own, the old ones are
// merged in underneath them. A wildcard alias is consumed by running it.
func (a CommandAlias) Run(ctx context.Context, input string, meta *AppMeta) (string, error) {
	saved := meta.Aliases
	meta.Aliases = AliasSet{}
	if a.wildcard {
		saved = saved.without(wildcardKey)
	}

	meta.shadowed = append(meta.shadowed, saved)
	defer func() { meta.shadowed = meta.shadowed[:len(meta.shadowed)-1] }()

	out, err := a.Command.Run(ctx, input, meta)

	if meta.Aliases.Len() == 0 {
		meta.Aliases = saved
	} else {
		meta.Aliases.insertMissing(saved)
	}
	return out, err
}

func parseAlias(input string, meta *AppMeta) (Command, []Command) {
	if alias, ok := meta.Aliases.Wildcard(); ok {
		return alias, nil
	}
	if alias, ok := meta.lookupAlias(input); ok {
		return alias, nil
	}
	return nil, nil
}

func autocompleteAlias(input string, meta *AppMeta) []Suggestion {
	var out []Suggestion
	for _, alias := range meta.Aliases.All() {
		// Alias terms are matched exactly as typed.
		if !alias.wildcard && input != "" && strings.HasPrefix(alias.Term, input) {
			out = append(out, Suggestion{Text: alias.Term, Summary: alias.Summary})
		}
	}
	return out
}

// AliasSet holds at most one alias per term and at most one wildcard. The
// zero value is empty and ready to use.
type AliasSet struct {
	aliases map[string]CommandAlias
}

// Insert adds a, replacing any alias with the same term.
func (s *AliasSet) Insert(a CommandAlias) {
	if s.aliases == nil {
		s.aliases = make(map[string]CommandAlias)
	}
	s.aliases[a.key()] = a
}

// Get returns the literal alias for term.
func (s AliasSet) Get(term string) (CommandAlias, bool) {
	if term == wildcardKey {
		return CommandAlias{}, false
	}
	a, ok := s.aliases[term]
	return a, ok
}

func (s AliasSet) Wildcard() (CommandAlias, bool) {
	a, ok := s.aliases[wildcardKey]
	return a, ok
}

func (s AliasSet) Len() int { return len(s.aliases) }

// All returns every alias, literals ordered by term after any wildcard.
func (s AliasSet) All() []CommandAlias {
	out := make([]CommandAlias, 0, len(s.aliases))
	for _, a := range s.aliases {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key() < out[j].key() })
	return out
}

func (s *AliasSet) insertMissing(other AliasSet) {
	for key, a := range other.aliases {
		if _, ok := s.aliases[key]; !ok {
			s.Insert(a)
		}
	}
}

func (s AliasSet) without(key string) AliasSet {
	if _, ok := s.aliases[key]; !ok {
		return s
	}
	out := AliasSet{aliases: make(map[string]CommandAlias, len(s.aliases))}
	for k, a := range s.aliases {
		if k != key {
			out.aliases[k] = a
		}
	}
	return out
}
