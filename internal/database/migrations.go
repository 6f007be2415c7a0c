// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/larder/internal/logging"
)

// Migration represents a versioned database migration.
type Migration struct {
	Version int    // Unique version number (monotonically increasing)
	Name    string // Human-readable migration name
	SQL     string // Statements to execute, separated by semicolons
}

const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name VARCHAR NOT NULL,
	applied_at TIMESTAMP NOT NULL
);
`

// migrations returns all versioned migrations in order.
// Migrations MUST be append-only once databases exist in the wild.
func migrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_recipes",
			SQL: `
CREATE TABLE recipes (
	id VARCHAR PRIMARY KEY,
	title VARCHAR NOT NULL,
	description VARCHAR NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL,
	is_published BOOLEAN NOT NULL DEFAULT false,
	prep_time INTEGER NOT NULL DEFAULT 0,
	cook_time INTEGER NOT NULL DEFAULT 0,
	servings INTEGER NOT NULL DEFAULT 0
)`,
		},
		{
			Version: 2,
			Name:    "create_interactions",
			SQL: `
CREATE TABLE ratings (
	user_id VARCHAR NOT NULL,
	recipe_id VARCHAR NOT NULL,
	rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	rated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (user_id, recipe_id)
);
CREATE TABLE recipe_views (
	user_id VARCHAR NOT NULL,
	recipe_id VARCHAR NOT NULL,
	viewed_at TIMESTAMP NOT NULL
);
CREATE INDEX idx_recipe_views_user ON recipe_views (user_id)`,
		},
		{
			Version: 3,
			Name:    "create_user_preferences",
			SQL: `
CREATE TABLE user_preferences (
	user_id VARCHAR PRIMARY KEY,
	favorite_cuisines VARCHAR NOT NULL DEFAULT '[]',
	dietary_restrictions VARCHAR NOT NULL DEFAULT '[]',
	cooking_time INTEGER NOT NULL DEFAULT 0,
	meal_types VARCHAR NOT NULL DEFAULT '[]',
	updated_at TIMESTAMP NOT NULL
)`,
		},
	}
}

// migrate applies every migration newer than the recorded schema version.
// Each migration runs in its own transaction together with its bookkeeping row.
func (db *DB) migrate(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	current, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations() {
		if m.Version <= current {
			continue
		}
		if err := db.applyMigration(ctx, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
		logging.Info().Int("version", m.Version).Str("name", m.Name).Msg("Applied migration")
	}
	return nil
}

func (db *DB) applyMigration(ctx context.Context, m Migration) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)",
		m.Version, m.Name, time.Now().UTC()); err != nil {
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit()
}

// SchemaVersion returns the highest applied migration version, or 0.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := db.conn.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
