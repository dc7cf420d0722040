// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles schema creation and first-run seeding.

# Schema

CreateSchema creates all tables if they don't exist:

  - vote: live ballots with soft-delete exclusion flag
  - poll_round: append-only archive of completed rounds (JSON payload)
  - settings: singleton row holding the active weight config and
    hide-results flag
  - admin_credential: singleton bcrypt password hash
  - session: admin session tokens with expiry

The DDL sticks to the dialect shared by PostgreSQL (lib/pq) and SQLite
(modernc.org/sqlite), since the server runs on either backend.

# Seeding

SeedDefaults inserts the default weight config (3-2-1) and the admin
credential on first start. It never overwrites existing rows.

# Usage

	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}
	if err := db.SeedDefaults(dbConn, passwordHash); err != nil {
		// handle error
	}
*/
package db
