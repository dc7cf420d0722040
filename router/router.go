// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/travel-tally/cliparse"
	"github.com/danielhkuo/travel-tally/handlers"
	"github.com/danielhkuo/travel-tally/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	roundHandler := handlers.NewRoundHandler(db, cfg)
	configHandler := handlers.NewConfigHandler(db, cfg)
	transferHandler := handlers.NewTransferHandler(db, cfg)
	crosstabHandler := handlers.NewCrosstabHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public voting path
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.SubmitVote))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /config/presets", middleware.WithLogging(configHandler.GetPresets))

	// Vote management (admin)
	mux.HandleFunc("GET /votes", middleware.WithLogging(voteHandler.ListVotes))
	mux.HandleFunc("DELETE /votes/{id}", middleware.WithLogging(voteHandler.DeleteVote))
	mux.HandleFunc("POST /votes/{id}/exclude", middleware.WithLogging(voteHandler.ToggleExcludeVote))

	// Round lifecycle (admin)
	mux.HandleFunc("POST /rounds", middleware.WithLogging(roundHandler.ArchiveAndReset))
	mux.HandleFunc("GET /rounds", middleware.WithLogging(roundHandler.ListRounds))
	mux.HandleFunc("GET /rounds/{number}", middleware.WithLogging(roundHandler.GetRound))

	// Configuration (admin)
	mux.HandleFunc("GET /config", middleware.WithLogging(configHandler.GetConfig))
	mux.HandleFunc("PUT /config", middleware.WithLogging(configHandler.UpdateConfig))
	mux.HandleFunc("GET /settings", middleware.WithLogging(configHandler.GetSettings))
	mux.HandleFunc("PUT /settings", middleware.WithLogging(configHandler.UpdateSettings))

	// Import/Export (admin)
	mux.HandleFunc("GET /export", middleware.WithLogging(transferHandler.Export))
	mux.HandleFunc("POST /import", middleware.WithLogging(transferHandler.Import))

	// Cross-tabulation (admin)
	mux.HandleFunc("GET /crosstab", middleware.WithLogging(crosstabHandler.GetCrosstab))

	// Admin session management
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(adminHandler.Login))
	mux.HandleFunc("POST /admin/logout", middleware.WithLogging(adminHandler.Logout))
	mux.HandleFunc("POST /admin/password", middleware.WithLogging(adminHandler.ChangePassword))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("travel-tally API v1"))
	})

	return mux
}
