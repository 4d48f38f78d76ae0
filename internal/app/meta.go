package app

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"tavernkeep/internal/reference"
	"tavernkeep/internal/repository"
	"tavernkeep/internal/world"
)

// AppMeta is the per-session state every command runs against.
type AppMeta struct {
	Repository   *repository.Repository
	Aliases      AliasSet
	Rng          *rand.Rand
	Demographics world.Demographics
	Reference    *reference.Index
	Log          *zap.Logger

	// shadowed holds the alias sets swapped out by aliases that are still
	// running, innermost last. Their literals stay resolvable so a wrapped
	// command can run what the user's text would have run.
	shadowed []AliasSet
}

func (m *AppMeta) lookupAlias(term string) (CommandAlias, bool) {
	if a, ok := m.Aliases.Get(term); ok {
		return a, true
	}
	for i := len(m.shadowed) - 1; i >= 0; i-- {
		if a, ok := m.shadowed[i].Get(term); ok {
			return a, true
		}
	}
	return CommandAlias{}, false
}

// gen returns a fresh thing of the same kind as diff with every unlocked
// attribute randomized.
func (m *AppMeta) gen(diff world.Thing) world.Thing {
	t := diff.Clone()
	world.Regenerate(t, m.Rng, m.Demographics)
	return t
}
