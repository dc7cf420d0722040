// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/travel-tally/auth"
	"github.com/danielhkuo/travel-tally/cliparse"
	"github.com/danielhkuo/travel-tally/middleware"
	"github.com/danielhkuo/travel-tally/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg}
}

// requireSession validates the X-Session-Token header and writes a 401 on
// failure. Auth failures never reveal whether a session record exists.
func requireSession(db *sql.DB, w http.ResponseWriter, r *http.Request) bool {
	token := r.Header.Get("X-Session-Token")
	err := auth.ValidateSession(db, token)
	if err == nil {
		return true
	}
	if err != auth.ErrInvalidSession {
		slog.Error("failed to validate session", "error", err)
	}
	middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session")
	return false
}

// hasValidSession checks the session header without writing a response.
// Used where a session widens access rather than gates it.
func hasValidSession(db *sql.DB, r *http.Request) bool {
	return auth.ValidateSession(db, r.Header.Get("X-Session-Token")) == nil
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := auth.VerifyPassword(h.db, req.Password)
	if err == auth.ErrInvalidCredentials {
		slog.Warn("failed login attempt", "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid password")
		return
	}
	if err != nil {
		slog.Error("failed to verify password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	token, expiresAt, err := auth.CreateSession(h.db)
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed")
		return
	}

	slog.Info("admin logged in", "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusCreated, models.LoginResponse{
		SessionToken: token,
		ExpiresAt:    expiresAt,
	})
}

// Logout handles POST /admin/logout (admin)
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	token := r.Header.Get("X-Session-Token")
	if err := auth.DeleteSession(h.db, token); err != nil {
		slog.Error("failed to delete session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Logout failed")
		return
	}

	slog.Info("admin logged out")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "Logged out"})
}

// ChangePassword handles POST /admin/password (admin)
// Replaces the credential and revokes every session, including the caller's.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if !requireSession(h.db, w, r) {
		return
	}

	var req models.ChangePasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	password := strings.TrimSpace(req.NewPassword)
	if utf8.RuneCountInString(password) < 4 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Password must be at least 4 characters long")
		return
	}

	if err := auth.SetPassword(h.db, password); err != nil {
		slog.Error("failed to set password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	slog.Info("admin password changed")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Password changed, please log in again",
	})
}
