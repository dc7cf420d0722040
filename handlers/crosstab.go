// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/danielhkuo/travel-tally/cliparse"
	"github.com/danielhkuo/travel-tally/geo"
	"github.com/danielhkuo/travel-tally/middleware"
	"github.com/danielhkuo/travel-tally/models"
)

type CrosstabHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCrosstabHandler(db *sql.DB, cfg cliparse.Config) *CrosstabHandler {
	return &CrosstabHandler{db: db, cfg: cfg}
}

// GetCrosstab handles GET /crosstab (admin)
// Builds a region-by-voter points matrix from the non-excluded votes.
// Choices are folded into countries via the geo lookup, with unknown
// destinations passing through as their own region. Points follow the
// active weight config.
func (h *CrosstabHandler) GetCrosstab(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	votes, err := listVotes(h.db)
	if err != nil {
		slog.Error("failed to list votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	wc, _, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rankPoints := [3]int{wc.First, wc.Second, wc.Third}

	matrix := make(map[string]map[string]int)
	rowTotals := make(map[string]int)
	colTotals := make(map[string]int)
	voters := []models.CrosstabVoter{}

	for _, vote := range votes {
		if vote.Excluded {
			continue
		}
		voters = append(voters, models.CrosstabVoter{ID: vote.ID, Name: vote.Name})

		choices := [3]string{vote.FirstChoice, vote.SecondChoice, vote.ThirdChoice}
		for rank, raw := range choices {
			choice := strings.TrimSpace(raw)
			if choice == "" {
				continue
			}
			region := geo.Title(geo.Lookup(choice))

			if matrix[region] == nil {
				matrix[region] = make(map[string]int)
			}
			points := rankPoints[rank]
			matrix[region][vote.ID] += points
			rowTotals[region] += points
			colTotals[vote.ID] += points
		}
	}

	regions := make([]string, 0, len(matrix))
	for region := range matrix {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	middleware.JSONResponse(w, http.StatusOK, models.CrosstabResponse{
		Regions:   regions,
		Voters:    voters,
		Matrix:    matrix,
		RowTotals: rowTotals,
		ColTotals: colTotals,
	})
}
