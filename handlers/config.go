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
	"github.com/danielhkuo/travel-tally/validation"
)

type ConfigHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewConfigHandler(db *sql.DB, cfg cliparse.Config) *ConfigHandler {
	return &ConfigHandler{db: db, cfg: cfg}
}

// GetPresets handles GET /config/presets (public)
func (h *ConfigHandler) GetPresets(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.DefaultWeightConfigs)
}

// GetConfig handles GET /config (admin)
// Returns the active weight config.
func (h *ConfigHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	wc, _, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, wc)
}

// UpdateConfig handles PUT /config (admin)
// Point values matching a preset keep that preset's identity; anything else
// is stored as the "custom" scheme. Archived rounds are unaffected - each
// carries its own copy.
func (h *ConfigHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	var req models.WeightConfig
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	wc := normalizeWeightConfig(req)
	if errs := validation.ValidateWeightConfig(wc); len(errs) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, errs[0])
		return
	}

	_, err := h.db.Exec(`
		UPDATE settings SET weight_id = $1, weight_name = $2, first_points = $3, second_points = $4, third_points = $5
		WHERE id = 1
	`, wc.ID, wc.Name, wc.First, wc.Second, wc.Third)
	if err != nil {
		slog.Error("failed to update weight config", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update config")
		return
	}

	slog.Info("weight config updated", "weight_id", wc.ID, "first", wc.First, "second", wc.Second, "third", wc.Third)

	middleware.JSONResponse(w, http.StatusOK, wc)
}

// GetSettings handles GET /settings (admin)
func (h *ConfigHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	_, hideResults, err := loadSettings(h.db)
	if err != nil {
		slog.Error("failed to load settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SettingsResponse{HideResults: hideResults})
}

// UpdateSettings handles PUT /settings (admin)
func (h *ConfigHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	var req models.UpdateSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.HideResults == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "hide_results is required")
		return
	}

	_, err := h.db.Exec(`UPDATE settings SET hide_results = $1 WHERE id = 1`, *req.HideResults)
	if err != nil {
		slog.Error("failed to update settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	slog.Info("settings updated", "hide_results", *req.HideResults)

	middleware.JSONResponse(w, http.StatusOK, models.SettingsResponse{HideResults: *req.HideResults})
}

// normalizeWeightConfig resolves the stored identity for a config update:
// point values equal to a preset adopt that preset's id and name, anything
// else becomes the user-edited "custom" scheme.
func normalizeWeightConfig(req models.WeightConfig) models.WeightConfig {
	for _, preset := range models.DefaultWeightConfigs {
		if req.First == preset.First && req.Second == preset.Second && req.Third == preset.Third {
			return preset
		}
	}
	return models.WeightConfig{
		ID:     models.WeightCustom,
		Name:   "Custom",
		First:  req.First,
		Second: req.Second,
		Third:  req.Third,
	}
}

// loadSettings reads the singleton settings row.
func loadSettings(q querier) (models.WeightConfig, bool, error) {
	rows, err := q.Query(`
		SELECT weight_id, weight_name, first_points, second_points, third_points, hide_results
		FROM settings
		WHERE id = 1
	`)
	if err != nil {
		return models.WeightConfig{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return models.WeightConfig{}, false, err
		}
		return models.WeightConfig{}, false, sql.ErrNoRows
	}

	var wc models.WeightConfig
	var hideResults bool
	if err := rows.Scan(&wc.ID, &wc.Name, &wc.First, &wc.Second, &wc.Third, &hideResults); err != nil {
		return models.WeightConfig{}, false, err
	}

	return wc, hideResults, rows.Err()
}
