// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Travel Tally API server.

Travel Tally is a ranked-choice travel poll: participants submit a name and
up to three ranked destination choices, an administrator configures the
point weights per rank, and voting cycles are closed by archiving a round -
an immutable snapshot of the votes, the computed standings, and the weight
config in effect.

# Starting the Server

The server requires a database URL via environment variables, a .env file,
or CLI flags:

	DATABASE_URL=tally.db go run .

Or with flags:

	go run . -p 3318 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_PASSWORD (-admin-password): Initial admin password, seeded on
    first run only

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (votes, results, rounds, config,
    transfer, crosstab, admin) plus the aggregation engine
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - validation: Submission and import-document validation
  - auth: Admin credential and session management
  - geo: Destination-to-country lookup for cross-tabulation
  - db: Schema creation and seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
