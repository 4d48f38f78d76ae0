package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"tavernkeep/internal/clock"
	"tavernkeep/internal/world"
)

// Backup is a decoded export document.
type Backup struct {
	Things []world.Thing
	// Time is nil when the backup carries no clock.
	Time *clock.Time
}

type backupJSON struct {
	Things   []json.RawMessage `json:"things"`
	KeyValue struct {
		Time *string `json:"time"`
	} `json:"keyValue"`
}

// ReadBackup decodes an export document. Things that cannot be decoded or
// would be unusable once saved are reported in the returned slice of
// problems rather than failing the whole backup.
func ReadBackup(r io.Reader) (*Backup, []error, error) {
	var raw backupJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decoding backup: %w", err)
	}

	backup := &Backup{}
	var problems []error

	if raw.KeyValue.Time != nil {
		t, err := clock.ParseShort(*raw.KeyValue.Time)
		if err != nil {
			problems = append(problems, fmt.Errorf("time %q: %w", *raw.KeyValue.Time, err))
		} else {
			backup.Time = &t
		}
	}

	names := make(map[string]int)
	for i, data := range raw.Things {
		t, err := world.UnmarshalThing(data)
		if err != nil {
			problems = append(problems, fmt.Errorf("thing %d: %w", i, err))
			continue
		}
		name, ok := world.Name(t)
		if !ok || strings.TrimSpace(name) == "" {
			problems = append(problems, fmt.Errorf("thing %d: saved %s has no name", i, t.Kind().Noun()))
			continue
		}
		key := strings.ToLower(name)
		if first, dup := names[key]; dup {
			problems = append(problems, fmt.Errorf("thing %d: name %q already used by thing %d", i, name, first))
			continue
		}
		names[key] = i

		if t.ID() == uuid.Nil {
			t.SetID(uuid.New())
		}
		backup.Things = append(backup.Things, t)
	}

	return backup, problems, nil
}
