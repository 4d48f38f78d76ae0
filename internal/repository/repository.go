// Package repository owns saved and recently generated things and the world
// clock, in front of a pluggable data store.
package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tavernkeep/internal/clock"
	"tavernkeep/internal/logger"
	"tavernkeep/internal/store"
	"tavernkeep/internal/world"
)

// RecentMaxLen bounds the recent list; the oldest entry is evicted first.
const RecentMaxLen = 100

const keyTime = "time"

// Repository is not safe for concurrent use.
type Repository struct {
	cache            map[uuid.UUID]world.Thing
	recent           []world.Thing
	time             clock.Time
	dataStore        store.DataStore
	dataStoreEnabled bool
	log              *zap.Logger
}

func New(ds store.DataStore, log *zap.Logger) *Repository {
	if ds == nil {
		ds = store.NullDataStore{}
	}
	return &Repository{
		cache:     make(map[uuid.UUID]world.Thing),
		time:      clock.Default(),
		dataStore: ds,
		log:       logger.OrNop(log),
	}
}

// Init loads saved things and the clock. A failing store leaves the
// repository in ephemeral mode rather than returning an error.
func (r *Repository) Init(ctx context.Context) {
	things, err := r.dataStore.GetAllTheThings(ctx)
	if err != nil {
		r.log.Info("data store unavailable, running without persistence", zap.Error(err))
	} else {
		r.cache = make(map[uuid.UUID]world.Thing, len(things))
		for _, t := range things {
			if t.ID() == uuid.Nil {
				r.log.Warn("dropping stored thing without uuid", zap.String("summary", t.Summary()))
				continue
			}
			r.cache[t.ID()] = t
		}
		r.dataStoreEnabled = true
		r.log.Debug("loaded journal", zap.Int("things", len(r.cache)))
	}

	value, ok, err := r.dataStore.GetValue(ctx, keyTime)
	if err != nil || !ok {
		return
	}
	t, err := clock.ParseShort(value)
	if err != nil {
		r.log.Warn("ignoring unparseable stored time", zap.String("value", value), zap.Error(err))
		return
	}
	r.SetTime(ctx, t)
}

func (r *Repository) DataStoreEnabled() bool {
	return r.dataStoreEnabled
}

func (r *Repository) PushRecent(t world.Thing) {
	for len(r.recent) >= RecentMaxLen {
		r.recent = r.recent[1:]
	}
	r.recent = append(r.recent, t)
}

// Recent returns the recent list, oldest first.
func (r *Repository) Recent() []world.Thing {
	out := make([]world.Thing, len(r.recent))
	copy(out, r.recent)
	return out
}

// Journal returns every saved thing ordered by name.
func (r *Repository) Journal() []world.Thing {
	things := make([]world.Thing, 0, len(r.cache))
	for _, t := range r.cache {
		things = append(things, t)
	}
	sort.Slice(things, func(i, j int) bool {
		a, _ := world.Name(things[i])
		b, _ := world.Name(things[j])
		return strings.ToLower(a) < strings.ToLower(b)
	})
	return things
}

// LoadThingByName finds a thing by case-insensitive name, searching the
// journal before the recent list.
func (r *Repository) LoadThingByName(name string) (world.Thing, bool) {
	if _, t, ok := r.findCached(name); ok {
		return t, true
	}
	if i := r.findRecent(name); i >= 0 {
		return r.recent[i], true
	}
	return nil, false
}

// IsSaved reports whether t is in the journal.
func (r *Repository) IsSaved(t world.Thing) bool {
	_, ok := r.cache[t.ID()]
	return ok && t.ID() != uuid.Nil
}

func (r *Repository) Time() clock.Time {
	return r.time
}

// SetTime changes the clock. Persisting it is best effort.
func (r *Repository) SetTime(ctx context.Context, t clock.Time) {
	if err := r.dataStore.SetValue(ctx, keyTime, t.Short()); err != nil && r.dataStoreEnabled {
		r.log.Warn("persisting time", zap.Error(err))
	}
	r.time = t
}

// SaveThingByName moves a recent thing into the journal.
func (r *Repository) SaveThingByName(ctx context.Context, name string) (string, error) {
	t, err := r.Modify(ctx, Save{Name: name})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s was successfully saved.", t.Summary()), nil
}

// DeleteThingByName removes a thing from the journal, or failing that from
// the recent list. Recent things were never persisted so the store is not
// consulted for them.
func (r *Repository) DeleteThingByName(ctx context.Context, name string) (string, error) {
	if id, t, ok := r.findCached(name); ok {
		thingName, _ := world.Name(t)

		storeErr := r.dataStore.DeleteThingByUUID(ctx, id)
		if storeErr != nil {
			r.log.Warn("deleting thing from data store", zap.String("name", thingName), zap.Error(storeErr))
		}
		_, cached := r.cache[id]
		delete(r.cache, id)

		if storeErr == nil || cached {
			return fmt.Sprintf("%s was successfully deleted.", thingName), nil
		}
		return "", fmt.Errorf("Could not delete %s.", thingName)
	}

	if t, ok := r.takeRecent(name); ok {
		thingName, _ := world.Name(t)
		return fmt.Sprintf("%s deleted from recent entries. This isn't normally necessary as recent entries aren't automatically saved from one session to another.", thingName), nil
	}

	return "", fmt.Errorf("There is no entity named %s.", name)
}

// Modify applies c, returning the affected thing. Rejections are
// *ChangeError values.
func (r *Repository) Modify(ctx context.Context, c Change) (world.Thing, error) {
	switch c := c.(type) {
	case Create:
		if err := r.checkNameFree(c, c.Thing); err != nil {
			return nil, err
		}
		r.PushRecent(c.Thing)
		return c.Thing, nil

	case CreateAndSave:
		if err := r.checkNameFree(c, c.Thing); err != nil {
			return nil, err
		}
		c.Thing.SetID(uuid.New())
		if err := r.dataStore.SaveThing(ctx, c.Thing); err != nil {
			r.log.Warn("saving new thing", zap.Error(err))
			c.Thing.SetID(uuid.Nil)
			name, _ := world.Name(c.Thing)
			return nil, reject(c, ErrStoreFailure, fmt.Sprintf("Couldn't save `%s`", name))
		}
		r.cache[c.Thing.ID()] = c.Thing
		return c.Thing, nil

	case Save:
		return r.save(ctx, c)

	case Edit:
		return r.edit(ctx, c)

	default:
		return nil, fmt.Errorf("unsupported change %T", c)
	}
}

func (r *Repository) save(ctx context.Context, c Save) (world.Thing, error) {
	t, ok := r.takeRecent(c.Name)
	if !ok {
		if _, _, saved := r.findCached(c.Name); saved {
			return nil, reject(c, ErrNameConflict, fmt.Sprintf("`%s` has already been saved to your `journal`", c.Name))
		}
		return nil, reject(c, ErrNotFound, fmt.Sprintf("No matches for %q", c.Name))
	}

	t.SetID(uuid.New())
	if err := r.dataStore.SaveThing(ctx, t); err != nil {
		r.log.Warn("saving thing", zap.String("name", c.Name), zap.Error(err))
		t.SetID(uuid.Nil)
		r.PushRecent(t)
		name, _ := world.Name(t)
		return nil, reject(c, ErrStoreFailure, fmt.Sprintf("Couldn't save `%s`", name))
	}

	r.cache[t.ID()] = t
	return t, nil
}

func (r *Repository) edit(ctx context.Context, c Edit) (world.Thing, error) {
	var (
		target world.Thing
		saved  bool
	)
	if _, t, ok := r.findCached(c.Name); ok {
		target, saved = t, true
	} else if i := r.findRecent(c.Name); i >= 0 {
		target = r.recent[i]
	} else {
		return nil, reject(c, ErrNotFound, fmt.Sprintf("There is no entity named %s.", c.Name))
	}

	if newName, ok := world.Name(c.Diff); ok && !world.NameEquals(target, newName) {
		if other, taken := r.LoadThingByName(newName); taken {
			return nil, reject(c, ErrNameConflict, fmt.Sprintf("That name is already in use by %s.", other.Summary()))
		}
	}

	edited := target.Clone()
	if err := world.Apply(edited, c.Diff); err != nil {
		return nil, reject(c, err, fmt.Sprintf("%s is not a %s.", c.Name, c.Diff.Kind().Noun()))
	}

	if saved {
		if err := r.dataStore.SaveThing(ctx, edited); err != nil {
			r.log.Warn("saving edited thing", zap.String("name", c.Name), zap.Error(err))
			return nil, reject(c, ErrStoreFailure, fmt.Sprintf("Couldn't save `%s`", c.Name))
		}
		r.cache[edited.ID()] = edited
	} else {
		r.recent[r.findRecent(c.Name)] = edited
	}
	return edited, nil
}

func (r *Repository) checkNameFree(c Change, t world.Thing) error {
	name, ok := world.Name(t)
	if !ok {
		return nil
	}
	if other, taken := r.LoadThingByName(name); taken {
		return reject(c, ErrNameConflict, fmt.Sprintf("That name is already in use by %s.", other.Summary()))
	}
	return nil
}

func (r *Repository) findCached(name string) (uuid.UUID, world.Thing, bool) {
	for id, t := range r.cache {
		if world.NameEquals(t, name) {
			return id, t, true
		}
	}
	return uuid.Nil, nil, false
}

func (r *Repository) findRecent(name string) int {
	for i, t := range r.recent {
		if world.NameEquals(t, name) {
			return i
		}
	}
	return -1
}

func (r *Repository) takeRecent(name string) (world.Thing, bool) {
	i := r.findRecent(name)
	if i < 0 {
		return nil, false
	}
	t := r.recent[i]
	r.recent = append(r.recent[:i], r.recent[i+1:]...)
	return t, true
}
