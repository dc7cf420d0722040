// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Travel Tally API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - VoteHandler: public submission plus admin vote management
  - ResultsHandler: live standings computation
  - RoundHandler: round archival and history
  - ConfigHandler: weight config, presets, and deployment settings
  - TransferHandler: JSON export and bulk import
  - CrosstabHandler: region-by-voter points matrix
  - AdminHandler: login, logout, password change

Handlers are created via constructor functions that accept *sql.DB and Config:

	voteHandler := handlers.NewVoteHandler(db, cfg)

# Aggregation

The aggregation engine is implemented in tally.go:

	results := handlers.ComputeResults(votes, weights)

A pure function: excluded votes are dropped, each remaining choice adds its
rank's points under the weight config, destinations merge case-insensitively
with the first-seen casing kept for display, and standings are ordered by
totalPoints descending with ties broken by normalized name. Safe to call
concurrently.

# Round Lifecycle

The live vote set accumulates until an admin archives it:

	POST /rounds → ArchiveAndReset

One transaction snapshots the full vote set (excluded votes included), the
computed standings, and the active weight config into an immutable
poll_round row, then clears the live votes. On any failure the transaction
rolls back and the live votes remain.

# Authentication

Admin operations call requireSession, which validates the X-Session-Token
header against the session store. Vote submission is public.

# Voting Flow

	POST /votes          → SubmitVote (public, validated)
	GET  /results        → GetResults (sealed while hide-results is on)
	POST /rounds         → ArchiveAndReset (admin)
	GET  /export         → Export (admin, download)
	POST /import         → Import (admin, all-or-nothing)
*/
package handlers
