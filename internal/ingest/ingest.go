// Package ingest restores an exported journal into a data store.
package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tavernkeep/internal/world"
)

const keyTime = "time"

// ErrNameConflict is recorded when two things in one backup resolve to the
// same stored entry.
var ErrNameConflict = errors.New("name already imported")

type Result struct {
	ThingsSaved   int
	ThingsSkipped int
	ThingsRemoved int
	TimeRestored  bool
	Errors        []error
}

type Options struct {
	// Full removes stored things that are absent from the backup, leaving
	// the store an exact copy of it.
	Full bool
}

// Run writes every thing in the backup to the store. A thing named like a
// stored one, ignoring case, takes over the stored uuid. Things whose stored
// copy is identical are skipped. A thing that fails to save is recorded in
// the result and does not stop the import.
func Run(ctx context.Context, backup *Backup, db Store, options Options) (*Result, error) {
	existing, err := db.GetAllTheThings(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stored things: %w", err)
	}

	existingHashes := make(map[uuid.UUID]string, len(existing))
	existingNames := make(map[string]uuid.UUID, len(existing))
	for _, t := range existing {
		if name, ok := world.Name(t); ok {
			existingNames[strings.ToLower(name)] = t.ID()
		}
		hash, err := computeHash(t)
		if err != nil {
			return nil, fmt.Errorf("hashing %s: %w", t.ID(), err)
		}
		existingHashes[t.ID()] = hash
	}

	result := &Result{}
	imported := make(map[uuid.UUID]bool, len(backup.Things))

	for _, t := range backup.Things {
		// A stored thing with the same name is overwritten in place.
		if name, ok := world.Name(t); ok {
			key := strings.ToLower(name)
			if id, found := existingNames[key]; found && id != t.ID() {
				t = t.Clone()
				t.SetID(id)
			}
			existingNames[key] = t.ID()
		}
		if imported[t.ID()] {
			result.Errors = append(result.Errors, fmt.Errorf("saving %s: %w", describe(t), ErrNameConflict))
			continue
		}
		imported[t.ID()] = true

		hash, err := computeHash(t)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("hashing %s: %w", describe(t), err))
			continue
		}
		if existingHashes[t.ID()] == hash {
			result.ThingsSkipped++
			continue
		}
		if err := db.SaveThing(ctx, t); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("saving %s: %w", describe(t), err))
			continue
		}
		result.ThingsSaved++
	}

	if options.Full {
		for _, t := range existing {
			if imported[t.ID()] {
				continue
			}
			if err := db.DeleteThingByUUID(ctx, t.ID()); err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("removing %s: %w", describe(t), err))
				continue
			}
			result.ThingsRemoved++
		}
	}

	if backup.Time != nil {
		if err := db.SetValue(ctx, keyTime, backup.Time.Short()); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("restoring time: %w", err))
		} else {
			result.TimeRestored = true
		}
	}

	return result, nil
}

func computeHash(t world.Thing) (string, error) {
	data, err := world.MarshalThing(t)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(bytes.TrimSpace(data))
	return hex.EncodeToString(sum[:]), nil
}

func describe(t world.Thing) string {
	if name, ok := world.Name(t); ok {
		return name
	}
	return t.ID().String()
}
