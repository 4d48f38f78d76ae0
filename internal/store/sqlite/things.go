package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tavernkeep/internal/store"
	"tavernkeep/internal/world"
)

func (c *Client) GetAllTheThings(ctx context.Context) ([]world.Thing, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT uuid, data FROM things ORDER BY name_normalized`)
	if err != nil {
		return nil, fmt.Errorf("listing things: %w", err)
	}
	defer rows.Close()

	var things []world.Thing
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scanning thing: %w", err)
		}
		thing, err := world.UnmarshalThing([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("thing %s: %w", id, err)
		}
		things = append(things, thing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating things: %w", err)
	}
	return things, nil
}

func (c *Client) SaveThing(ctx context.Context, thing world.Thing) error {
	if thing.ID() == uuid.Nil {
		return fmt.Errorf("saving thing: missing uuid")
	}

	data, err := world.MarshalThing(thing)
	if err != nil {
		return fmt.Errorf("encoding thing: %w", err)
	}
	name, _ := world.Name(thing)

	query := `
	INSERT INTO things (uuid, kind, name, name_normalized, data, saved_at)
	VALUES (?, ?, ?, ?, ?, datetime('now'))
	ON CONFLICT (uuid) DO UPDATE SET
		kind = excluded.kind,
		name = excluded.name,
		name_normalized = excluded.name_normalized,
		data = excluded.data,
		saved_at = datetime('now')
	`
	_, err = c.db.ExecContext(ctx, query,
		thing.ID().String(),
		thing.Kind().String(),
		name,
		strings.ToLower(name),
		string(data),
	)
	if err != nil {
		return fmt.Errorf("upserting thing: %w", err)
	}
	return nil
}

func (c *Client) DeleteThingByUUID(ctx context.Context, id uuid.UUID) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM things WHERE uuid = ?`, id.String())
	if err != nil {
		return fmt.Errorf("deleting thing: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting thing: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("deleting thing %s: %w", id, store.ErrNotFound)
	}
	return nil
}

func (c *Client) GetValue(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM key_value WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (c *Client) SetValue(ctx context.Context, key, value string) error {
	_, err := c.db.ExecContext(ctx, `
	INSERT INTO key_value (key, value) VALUES (?, ?)
	ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}
