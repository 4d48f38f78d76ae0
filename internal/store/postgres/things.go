package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"tavernkeep/internal/store"
	"tavernkeep/internal/world"
)

func (c *Client) GetAllTheThings(ctx context.Context) ([]world.Thing, error) {
	rows, err := c.pool.Query(ctx, `SELECT uuid, data FROM things ORDER BY name_normalized`)
	if err != nil {
		return nil, fmt.Errorf("listing things: %w", err)
	}
	defer rows.Close()

	var things []world.Thing
	for rows.Next() {
		var (
			id   uuid.UUID
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scanning thing: %w", err)
		}
		thing, err := world.UnmarshalThing(data)
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
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (uuid) DO UPDATE SET
    kind = EXCLUDED.kind,
    name = EXCLUDED.name,
    name_normalized = EXCLUDED.name_normalized,
    data = EXCLUDED.data,
    saved_at = now()
`
	_, err = c.pool.Exec(ctx, query,
		thing.ID(),
		thing.Kind().String(),
		name,
		strings.ToLower(name),
		data,
	)
	if err != nil {
		return fmt.Errorf("upserting thing: %w", err)
	}
	return nil
}

func (c *Client) DeleteThingByUUID(ctx context.Context, id uuid.UUID) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM things WHERE uuid = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting thing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deleting thing %s: %w", id, store.ErrNotFound)
	}
	return nil
}

func (c *Client) GetValue(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := c.pool.QueryRow(ctx, `SELECT value FROM key_value WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (c *Client) SetValue(ctx context.Context, key, value string) error {
	_, err := c.pool.Exec(ctx, `
INSERT INTO key_value (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
`, key, value)
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}
