// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Internal data structures, serialized with the camelCase field names of the
export document so one set of types serves the API, round snapshots, and
import/export:

  - Vote: one participant's ballot (three ranked free-text choices)
  - WeightConfig: points awarded per rank
  - DestinationResult: aggregated standing for one destination
  - PollRound: immutable archive of a completed voting cycle
  - ExportDocument: portable export format

# Request Types

Types for parsing incoming JSON:

  - SubmitVoteRequest: name plus up to three ranked choices
  - LoginRequest: admin password
  - ChangePasswordRequest: new_password
  - UpdateSettingsRequest: hide_results

# Response Types

Types for JSON responses:

  - SubmitVoteResponse: vote, message
  - ListVotesResponse: votes
  - ResultsResponse: results, vote_count, weightConfig
  - ArchiveRoundResponse / ListRoundsResponse: archived rounds
  - LoginResponse: session_token, expires_at
  - SettingsResponse: hide_results
  - ImportResponse: votes_imported, config_imported, message
  - CrosstabResponse: region-by-voter points matrix
  - ErrorResponse: error, message

# Constants

Weight config IDs:

	WeightDefault = "default"
	WeightLight   = "light"
	WeightHeavy   = "heavy"
	WeightCustom  = "custom"

DefaultWeightConfigs holds the three built-in presets; a user-edited scheme
is stored with the "custom" ID.
*/
package models
