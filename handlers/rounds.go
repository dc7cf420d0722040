// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/travel-tally/cliparse"
	"github.com/danielhkuo/travel-tally/middleware"
	"github.com/danielhkuo/travel-tally/models"
)

type RoundHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRoundHandler(db *sql.DB, cfg cliparse.Config) *RoundHandler {
	return &RoundHandler{db: db, cfg: cfg}
}

// ArchiveAndReset handles POST /rounds (admin)
// Snapshots the full live vote set (excluded votes included), the standings
// computed from it, and the active weight config into an immutable round,
// then clears the live votes. The snapshot insert and the vote wipe commit
// together or not at all - a failed archive leaves the live votes in place.
func (h *RoundHandler) ArchiveAndReset(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	votes, err := listVotes(tx)
	if err != nil {
		slog.Error("failed to snapshot votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	wc, _, err := loadSettings(tx)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var priorRounds int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM poll_round`).Scan(&priorRounds); err != nil {
		slog.Error("failed to count rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	round := models.PollRound{
		ID:           uuid.NewString(),
		RoundNumber:  priorRounds + 1,
		Timestamp:    time.Now().UTC(),
		Votes:        votes,
		Results:      ComputeResults(votes, wc),
		WeightConfig: wc,
	}

	payload, err := json.Marshal(round)
	if err != nil {
		slog.Error("failed to marshal round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to archive round")
		return
	}

	_, err = tx.Exec(`
		INSERT INTO poll_round (id, round_number, archived_at, payload)
		VALUES ($1, $2, $3, $4)
	`, round.ID, round.RoundNumber, round.Timestamp, string(payload))
	if err != nil {
		slog.Error("failed to insert round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to archive round")
		return
	}

	_, err = tx.Exec(`DELETE FROM vote`)
	if err != nil {
		slog.Error("failed to clear votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to archive round")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to archive round")
		return
	}

	slog.Info("round archived", "round_id", round.ID, "round_number", round.RoundNumber, "votes", len(votes))

	middleware.JSONResponse(w, http.StatusCreated, models.ArchiveRoundResponse{Round: round})
}

// ListRounds handles GET /rounds (admin)
// Returns all archived rounds in archive order.
func (h *RoundHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	rows, err := h.db.Query(`SELECT payload FROM poll_round ORDER BY round_number`)
	if err != nil {
		slog.Error("failed to query rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	rounds := []models.PollRound{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			slog.Error("failed to scan round", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		var round models.PollRound
		if err := json.Unmarshal(payload, &round); err != nil {
			slog.Error("failed to parse round payload", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to parse round")
			return
		}
		rounds = append(rounds, round)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read rounds", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListRoundsResponse{Rounds: rounds})
}

// GetRound handles GET /rounds/{number} (admin)
func (h *RoundHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil || number < 1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "round number must be a positive integer")
		return
	}

	var payload []byte
	err = h.db.QueryRow(`SELECT payload FROM poll_round WHERE round_number = $1`, number).Scan(&payload)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Round not found")
		return
	}
	if err != nil {
		slog.Error("failed to query round", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var round models.PollRound
	if err := json.Unmarshal(payload, &round); err != nil {
		slog.Error("failed to parse round payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to parse round")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, round)
}
