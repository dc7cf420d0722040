// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/travel-tally/models"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
//
// The DDL is restricted to the dialect shared by PostgreSQL and SQLite:
// explicit timestamps everywhere, TEXT columns for JSON payloads,
// CURRENT_TIMESTAMP defaults.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedDefaults inserts the singleton settings row (default weight config,
// results visible) and the admin credential when missing. Existing rows are
// left untouched, so a password change or config edit survives restarts.
func SeedDefaults(db *sql.DB, passwordHash string) error {
	def := models.DefaultWeightConfigs[0]
	_, err := db.Exec(`
		INSERT INTO settings (id, weight_id, weight_name, first_points, second_points, third_points, hide_results)
		VALUES (1, $1, $2, $3, $4, $5, FALSE)
		ON CONFLICT (id) DO NOTHING
	`, def.ID, def.Name, def.First, def.Second, def.Third)
	if err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO admin_credential (id, password_hash, updated_at)
		VALUES (1, $1, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO NOTHING
	`, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to seed admin credential: %w", err)
	}

	return nil
}

const schema = `
-- Live votes (one row per ballot; excluded is a soft-delete flag)
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    first_choice TEXT NOT NULL,
    second_choice TEXT NOT NULL DEFAULT '',
    third_choice TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    excluded BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_vote_created_at ON vote(created_at);

-- Archived rounds (append-only; payload is the full round JSON)
CREATE TABLE IF NOT EXISTS poll_round (
    id TEXT PRIMARY KEY,
    round_number INTEGER NOT NULL UNIQUE,
    archived_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    payload TEXT NOT NULL
);

-- Singleton deployment settings: active weight config + hide-results flag
CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    weight_id TEXT NOT NULL,
    weight_name TEXT NOT NULL,
    first_points INTEGER NOT NULL CHECK (first_points >= 0),
    second_points INTEGER NOT NULL CHECK (second_points >= 0),
    third_points INTEGER NOT NULL CHECK (third_points >= 0),
    hide_results BOOLEAN NOT NULL DEFAULT FALSE
);

-- Singleton admin credential (bcrypt hash)
CREATE TABLE IF NOT EXISTS admin_credential (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    password_hash TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Admin sessions
CREATE TABLE IF NOT EXISTS session (
    token TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    expires_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_expires_at ON session(expires_at);
`
