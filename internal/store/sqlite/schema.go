package sqlite

import (
	"context"
	"fmt"
	"strings"
)

const ddl = `
CREATE TABLE IF NOT EXISTS things (
	uuid            TEXT PRIMARY KEY,
	kind            TEXT NOT NULL,
	name            TEXT NOT NULL DEFAULT '',
	name_normalized TEXT NOT NULL DEFAULT '',
	data            TEXT NOT NULL,
	saved_at        TEXT DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_things_name_norm ON things (name_normalized);

-- world clock and other session values
CREATE TABLE IF NOT EXISTS key_value (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func (c *Client) EnsureSchema(ctx context.Context) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}
	return nil
}

// splitStatements breaks a DDL script on lines ending in ";", dropping
// comment lines.
func splitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
	)

	for _, line := range strings.Split(script, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}
	return statements
}
