package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tavernkeep/internal/clock"
	"tavernkeep/internal/world"
)

const exportDisclaimer = "This document is exported from tavernkeep. Please note that this format is currently undocumented and no guarantees of forward compatibility are provided, although a reasonable effort will be made to ensure that older backups can be safely imported."

// Export is a backup of the journal and session values.
type Export struct {
	Comment  string         `json:"_"`
	Things   []world.Thing  `json:"things"`
	KeyValue KeyValueExport `json:"keyValue"`
}

type KeyValueExport struct {
	Time *string `json:"time"`
}

// Export reads the journal and clock back from the data store. Without a
// working store it exports the in-memory journal and clock instead.
func (r *Repository) Export(ctx context.Context) (*Export, error) {
	out := &Export{Comment: exportDisclaimer, Things: []world.Thing{}}

	if !r.dataStoreEnabled {
		out.Things = append(out.Things, r.Journal()...)
		short := r.time.Short()
		out.KeyValue.Time = &short
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		things, err := r.dataStore.GetAllTheThings(ctx)
		if err != nil {
			return fmt.Errorf("reading things: %w", err)
		}
		out.Things = append(out.Things, things...)
		return nil
	})
	g.Go(func() error {
		value, ok, err := r.dataStore.GetValue(ctx, keyTime)
		if err != nil {
			return fmt.Errorf("reading time: %w", err)
		}
		if !ok {
			return nil
		}
		t, err := clock.ParseShort(value)
		if err != nil {
			return nil
		}
		short := t.Short()
		out.KeyValue.Time = &short
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("exporting: %w", err)
	}
	return out, nil
}
