// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/travel-tally/cliparse"
	"github.com/danielhkuo/travel-tally/middleware"
	"github.com/danielhkuo/travel-tally/models"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles GET /results
// Computes live standings from the current vote set and active weight
// config on every call - results are never persisted outside a round
// snapshot. While the hide-results flag is set, the public view returns
// 403; a valid admin session always sees results.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	wc, hideResults, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if hideResults && !hasValidSession(h.db, r) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are hidden")
		return
	}

	votes, err := listVotes(h.db)
	if err != nil {
		slog.Error("failed to list votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	results := ComputeResults(votes, wc)

	// vote_count is the number of ballots contributing to the standings
	count := 0
	for _, v := range votes {
		if !v.Excluded {
			count++
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Results:      results,
		VoteCount:    count,
		WeightConfig: wc,
	})
}
