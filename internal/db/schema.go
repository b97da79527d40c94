package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Monetary columns are decimal text
// so amounts round-trip exactly; date columns keep the user's raw text,
// which is normalized by flexdate when rows are scanned.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id              INTEGER PRIMARY KEY,
    name            TEXT NOT NULL,
    category        TEXT,
    notes           TEXT,
    price           TEXT NOT NULL DEFAULT '0',
    sold_price      TEXT,
    purchase_date   TEXT,
    warranty_date   TEXT,
    retirement_date TEXT,
    image           BLOB,
    image_mime      TEXT,
    created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at      DATETIME
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

// migrations are applied in order after schema creation. Each must be
// idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: speed up category filtering over active items.
	`CREATE INDEX IF NOT EXISTS idx_items_category_active
	     ON items(category) WHERE deleted_at IS NULL`,
}

// Migrate creates the schema and applies all migrations.
func Migrate(database *sql.DB) error {
	if _, err := database.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := database.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
