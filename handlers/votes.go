// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/travel-tally/cliparse"
	"github.com/danielhkuo/travel-tally/middleware"
	"github.com/danielhkuo/travel-tally/models"
	"github.com/danielhkuo/travel-tally/validation"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// SubmitVote handles POST /votes
// Public submission path - no session required.
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sub, errs := validation.ValidateSubmission(validation.Submission{
		Name:         req.Name,
		FirstChoice:  req.FirstChoice,
		SecondChoice: req.SecondChoice,
		ThirdChoice:  req.ThirdChoice,
	})
	if len(errs) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, errs[0])
		return
	}

	now := time.Now().UTC()
	vote := models.Vote{
		ID:           uuid.NewString(),
		Name:         sub.Name,
		FirstChoice:  sub.FirstChoice,
		SecondChoice: sub.SecondChoice,
		ThirdChoice:  sub.ThirdChoice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := h.db.Exec(`
		INSERT INTO vote (id, name, first_choice, second_choice, third_choice, created_at, updated_at, excluded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
	`, vote.ID, vote.Name, vote.FirstChoice, vote.SecondChoice, vote.ThirdChoice, vote.CreatedAt, vote.UpdatedAt)

	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	slog.Info("vote submitted", "vote_id", vote.ID, "name", vote.Name, "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		Vote:    vote,
		Message: "Vote submitted successfully",
	})
}

// ListVotes handles GET /votes (admin)
// Returns every live vote, including excluded ones.
func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	votes, err := listVotes(h.db)
	if err != nil {
		slog.Error("failed to list votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListVotesResponse{Votes: votes})
}

// DeleteVote handles DELETE /votes/{id} (admin)
// Permanent removal. Deleting an unknown id is a silent no-op.
func (h *VoteHandler) DeleteVote(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	voteID := r.PathValue("id")
	if voteID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote id is required")
		return
	}

	_, err := h.db.Exec(`DELETE FROM vote WHERE id = $1`, voteID)
	if err != nil {
		slog.Error("failed to delete vote", "error", err, "vote_id", voteID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete vote")
		return
	}

	slog.Info("vote deleted", "vote_id", voteID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Vote deleted"})
}

// ToggleExcludeVote handles POST /votes/{id}/exclude (admin)
// Flips the soft-delete flag and bumps updated_at. Toggling an unknown id
// is a silent no-op.
func (h *VoteHandler) ToggleExcludeVote(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	voteID := r.PathValue("id")
	if voteID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "vote id is required")
		return
	}

	_, err := h.db.Exec(`
		UPDATE vote SET excluded = NOT excluded, updated_at = $1 WHERE id = $2
	`, time.Now().UTC(), voteID)
	if err != nil {
		slog.Error("failed to toggle vote exclusion", "error", err, "vote_id", voteID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update vote")
		return
	}

	slog.Info("vote exclusion toggled", "vote_id", voteID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Vote updated"})
}

// querier is satisfied by *sql.DB and *sql.Tx, so vote loading works both
// standalone and inside the archive transaction.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// listVotes loads the full live vote collection in creation order.
func listVotes(q querier) ([]models.Vote, error) {
	rows, err := q.Query(`
		SELECT id, name, first_choice, second_choice, third_choice, created_at, updated_at, excluded
		FROM vote
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.Name, &v.FirstChoice, &v.SecondChoice, &v.ThirdChoice,
			&v.CreatedAt, &v.UpdatedAt, &v.Excluded); err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}

	return votes, rows.Err()
}
