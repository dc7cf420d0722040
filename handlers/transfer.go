// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/travel-tally/cliparse"
	"github.com/danielhkuo/travel-tally/middleware"
	"github.com/danielhkuo/travel-tally/models"
	"github.com/danielhkuo/travel-tally/validation"
)

// maxImportBytes caps the import payload size.
const maxImportBytes = 4 << 20

type TransferHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewTransferHandler(db *sql.DB, cfg cliparse.Config) *TransferHandler {
	return &TransferHandler{db: db, cfg: cfg}
}

// Export handles GET /export (admin)
// Emits the portable document with the live votes and active weight config,
// served as a download named travel-poll-export-<YYYY-MM-DD>.json.
func (h *TransferHandler) Export(w http.ResponseWriter, r *http.Request) {
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

	now := time.Now().UTC()
	filename := fmt.Sprintf("travel-poll-export-%s.json", now.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	slog.Info("data exported", "votes", len(votes))

	middleware.JSONResponse(w, http.StatusOK, models.ExportDocument{
		Votes:        votes,
		WeightConfig: wc,
		ExportedAt:   now,
	})
}

// Import handles POST /import (admin)
// Validates the entire document before touching anything, then applies it
// in one transaction: the votes key (when present) replaces the live vote
// set wholesale, and the weightConfig key (when present) becomes the active
// config. Any validation error rejects the whole document and leaves live
// data untouched.
func (h *TransferHandler) Import(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	r.Body.Close()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	data, errs := validation.ValidateImportDocument(body)
	if len(errs) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, errs[0])
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	votesImported := 0
	if data.Votes != nil {
		if _, err := tx.Exec(`DELETE FROM vote`); err != nil {
			slog.Error("failed to clear votes for import", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import data")
			return
		}

		for _, v := range *data.Votes {
			_, err := tx.Exec(`
				INSERT INTO vote (id, name, first_choice, second_choice, third_choice, created_at, updated_at, excluded)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, v.ID, v.Name, v.FirstChoice, v.SecondChoice, v.ThirdChoice, v.CreatedAt, v.UpdatedAt, v.Excluded)
			if err != nil {
				slog.Error("failed to insert imported vote", "error", err, "vote_id", v.ID)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import data")
				return
			}
		}
		votesImported = len(*data.Votes)
	}

	configImported := false
	if data.WeightConfig != nil {
		wc := *data.WeightConfig
		_, err := tx.Exec(`
			UPDATE settings SET weight_id = $1, weight_name = $2, first_points = $3, second_points = $4, third_points = $5
			WHERE id = 1
		`, wc.ID, wc.Name, wc.First, wc.Second, wc.Third)
		if err != nil {
			slog.Error("failed to import weight config", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import data")
			return
		}
		configImported = true
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit import", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import data")
		return
	}

	slog.Info("data imported", "votes", votesImported, "config", configImported)

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		VotesImported:  votesImported,
		ConfigImported: configImported,
		Message:        "Import completed",
	})
}
