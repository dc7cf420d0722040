// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Weight config IDs
const (
	WeightDefault = "default"
	WeightLight   = "light"
	WeightHeavy   = "heavy"
	WeightCustom  = "custom"
)

// DefaultWeightConfigs are the built-in point schemes. The first entry is
// the active config on a fresh deployment.
var DefaultWeightConfigs = []WeightConfig{
	{ID: WeightDefault, Name: "Default (3-2-1)", First: 3, Second: 2, Third: 1},
	{ID: WeightLight, Name: "Lightly Skewed (5-3-1)", First: 5, Second: 3, Third: 1},
	{ID: WeightHeavy, Name: "Heavily Skewed (10-5-2)", First: 10, Second: 5, Third: 2},
}

// Domain types
//
// Vote, WeightConfig, DestinationResult, and PollRound use the camelCase
// field names of the export document format, so the same types serve the
// API, round snapshots, and import/export.

type Vote struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	FirstChoice  string    `json:"firstChoice"`
	SecondChoice string    `json:"secondChoice"`
	ThirdChoice  string    `json:"thirdChoice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Excluded     bool      `json:"excluded,omitempty"`
}

type WeightConfig struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	First  int    `json:"first"`
	Second int    `json:"second"`
	Third  int    `json:"third"`
}

type DestinationResult struct {
	Name        string   `json:"name"`
	TotalPoints int      `json:"totalPoints"`
	FirstVotes  int      `json:"firstVotes"`
	SecondVotes int      `json:"secondVotes"`
	ThirdVotes  int      `json:"thirdVotes"`
	Voters      []string `json:"voters"`
}

// PollRound is an immutable archive of one voting cycle. Excluded votes are
// retained in the snapshot.
type PollRound struct {
	ID           string              `json:"id"`
	RoundNumber  int                 `json:"roundNumber"`
	Timestamp    time.Time           `json:"timestamp"`
	Votes        []Vote              `json:"votes"`
	Results      []DestinationResult `json:"results"`
	WeightConfig WeightConfig        `json:"weightConfig"`
}

// ExportDocument is the portable export format.
type ExportDocument struct {
	Votes        []Vote       `json:"votes"`
	WeightConfig WeightConfig `json:"weightConfig"`
	ExportedAt   time.Time    `json:"exportedAt"`
}

// Request types

type SubmitVoteRequest struct {
	Name         string `json:"name"`
	FirstChoice  string `json:"firstChoice"`
	SecondChoice string `json:"secondChoice"`
	ThirdChoice  string `json:"thirdChoice"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

type UpdateSettingsRequest struct {
	HideResults *bool `json:"hide_results"`
}

// Response types

type SubmitVoteResponse struct {
	Vote    Vote   `json:"vote"`
	Message string `json:"message"`
}

type ListVotesResponse struct {
	Votes []Vote `json:"votes"`
}

type ResultsResponse struct {
	Results      []DestinationResult `json:"results"`
	VoteCount    int                 `json:"vote_count"`
	WeightConfig WeightConfig        `json:"weightConfig"`
}

type ArchiveRoundResponse struct {
	Round PollRound `json:"round"`
}

type ListRoundsResponse struct {
	Rounds []PollRound `json:"rounds"`
}

type LoginResponse struct {
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SettingsResponse struct {
	HideResults bool `json:"hide_results"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ImportResponse struct {
	VotesImported  int    `json:"votes_imported"`
	ConfigImported bool   `json:"config_imported"`
	Message        string `json:"message"`
}

// CrosstabResponse is the region-by-voter points matrix. Matrix is keyed by
// region, then vote ID.
type CrosstabResponse struct {
	Regions   []string                  `json:"regions"`
	Voters    []CrosstabVoter           `json:"voters"`
	Matrix    map[string]map[string]int `json:"matrix"`
	RowTotals map[string]int            `json:"row_totals"`
	ColTotals map[string]int            `json:"col_totals"`
}

type CrosstabVoter struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
