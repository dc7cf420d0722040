// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/travel-tally/models"
)

func archiveRound(t *testing.T, handler *RoundHandler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/rounds", nil)
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	w := httptest.NewRecorder()
	handler.ArchiveAndReset(w, req)
	return w
}

func TestArchiveAndReset(t *testing.T) {
	conn := setupTestDB(t)
	handler := NewRoundHandler(conn, getTestConfig())
	token := createSession(t, conn)

	t.Run("requires session", func(t *testing.T) {
		w := archiveRound(t, handler, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 without session, got %d", w.Code)
		}
	})

	t.Run("snapshots votes and clears the live set", func(t *testing.T) {
		createVote(t, conn, "Alice", "Paris", "Rome", "")
		excluded := createVote(t, conn, "Bob", "Tokyo", "", "")
		if _, err := conn.Exec(`UPDATE vote SET excluded = TRUE WHERE id = $1`, excluded.ID); err != nil {
			t.Fatalf("Failed to exclude vote: %v", err)
		}

		w := archiveRound(t, handler, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d. Body: %s", w.Code, w.Body.String())
		}

		var resp models.ArchiveRoundResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		round := resp.Round

		if round.RoundNumber != 1 {
			t.Errorf("Expected round number 1, got %d", round.RoundNumber)
		}
		if round.ID == "" || round.Timestamp.IsZero() {
			t.Errorf("Incomplete round metadata: %+v", round)
		}
		// The snapshot keeps the excluded vote but its points stay out of
		// the archived standings.
		if len(round.Votes) != 2 {
			t.Errorf("Expected both votes in the snapshot, got %d", len(round.Votes))
		}
		if len(round.Results) != 2 {
			t.Fatalf("Expected 2 destinations in archived standings, got %d", len(round.Results))
		}
		for _, r := range round.Results {
			if r.Name == "Tokyo" {
				t.Error("Excluded vote scored in archived standings")
			}
		}
		if round.WeightConfig.ID != models.WeightDefault {
			t.Errorf("Expected the active weight config in the snapshot, got %+v", round.WeightConfig)
		}

		var liveVotes int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM vote`).Scan(&liveVotes); err != nil {
			t.Fatalf("Failed to count votes: %v", err)
		}
		if liveVotes != 0 {
			t.Errorf("Expected live votes cleared, found %d", liveVotes)
		}
	})

	t.Run("round numbers increment", func(t *testing.T) {
		createVote(t, conn, "Carol", "Lisbon", "", "")

		w := archiveRound(t, handler, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d", w.Code)
		}
		var resp models.ArchiveRoundResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Round.RoundNumber != 2 {
			t.Errorf("Expected round number 2, got %d", resp.Round.RoundNumber)
		}
	})

	t.Run("archiving an empty poll still advances the round", func(t *testing.T) {
		w := archiveRound(t, handler, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d", w.Code)
		}
		var resp models.ArchiveRoundResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Round.RoundNumber != 3 || len(resp.Round.Votes) != 0 {
			t.Errorf("Unexpected empty round: %+v", resp.Round)
		}
	})
}

func TestArchivedRoundsAreImmutable(t *testing.T) {
	conn := setupTestDB(t)
	roundHandler := NewRoundHandler(conn, getTestConfig())
	configHandler := NewConfigHandler(conn, getTestConfig())
	token := createSession(t, conn)

	createVote(t, conn, "Alice", "Paris", "", "")
	if w := archiveRound(t, roundHandler, token); w.Code != http.StatusCreated {
		t.Fatalf("Archive failed: %d", w.Code)
	}

	// Change the active config after archiving
	req := jsonRequest(t, "PUT", "/config", models.WeightConfig{First: 10, Second: 5, Third: 2})
	req.Header.Set("X-Session-Token", token)
	w := httptest.NewRecorder()
	configHandler.UpdateConfig(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Config update failed: %d", w.Code)
	}

	// The archived round still carries the config it was tallied under
	getReq := httptest.NewRequest("GET", "/rounds/1", nil)
	getReq.SetPathValue("number", "1")
	getReq.Header.Set("X-Session-Token", token)
	getW := httptest.NewRecorder()
	roundHandler.GetRound(getW, getReq)

	if getW.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", getW.Code)
	}
	var round models.PollRound
	if err := json.NewDecoder(getW.Body).Decode(&round); err != nil {
		t.Fatalf("Failed to decode round: %v", err)
	}
	if round.WeightConfig.ID != models.WeightDefault {
		t.Errorf("Archived round picked up the new config: %+v", round.WeightConfig)
	}
	if round.Results[0].TotalPoints != 3 {
		t.Errorf("Archived standings changed: %+v", round.Results[0])
	}
}

func TestListRounds(t *testing.T) {
	conn := setupTestDB(t)
	handler := NewRoundHandler(conn, getTestConfig())
	token := createSession(t, conn)

	t.Run("requires session", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rounds", nil)
		w := httptest.NewRecorder()
		handler.ListRounds(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("Expected 401 without session, got %d", w.Code)
		}
	})

	t.Run("empty history", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rounds", nil)
		req.Header.Set("X-Session-Token", token)
		w := httptest.NewRecorder()
		handler.ListRounds(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}
		var resp models.ListRoundsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Rounds == nil || len(resp.Rounds) != 0 {
			t.Errorf("Expected empty non-nil rounds array, got %v", resp.Rounds)
		}
	})

	t.Run("rounds in archive order", func(t *testing.T) {
		createVote(t, conn, "Alice", "Paris", "", "")
		archiveRound(t, handler, token)
		createVote(t, conn, "Bob", "Rome", "", "")
		archiveRound(t, handler, token)

		req := httptest.NewRequest("GET", "/rounds", nil)
		req.Header.Set("X-Session-Token", token)
		w := httptest.NewRecorder()
		handler.ListRounds(w, req)

		var resp models.ListRoundsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(resp.Rounds) != 2 {
			t.Fatalf("Expected 2 rounds, got %d", len(resp.Rounds))
		}
		if resp.Rounds[0].RoundNumber != 1 || resp.Rounds[1].RoundNumber != 2 {
			t.Errorf("Rounds out of order: %d, %d", resp.Rounds[0].RoundNumber, resp.Rounds[1].RoundNumber)
		}
		if resp.Rounds[1].Votes[0].Name != "Bob" {
			t.Errorf("Wrong votes in second round: %+v", resp.Rounds[1].Votes)
		}
	})
}

func TestGetRound(t *testing.T) {
	conn := setupTestDB(t)
	handler := NewRoundHandler(conn, getTestConfig())
	token := createSession(t, conn)

	createVote(t, conn, "Alice", "Paris", "", "")
	archiveRound(t, handler, token)

	tests := []struct {
		name           string
		number         string
		expectedStatus int
	}{
		{"existing round", "1", http.StatusOK},
		{"unknown round", "42", http.StatusNotFound},
		{"zero", "0", http.StatusBadRequest},
		{"negative", "-1", http.StatusBadRequest},
		{"not a number", "abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/rounds/"+tt.number, nil)
			req.SetPathValue("number", tt.number)
			req.Header.Set("X-Session-Token", token)
			w := httptest.NewRecorder()
			handler.GetRound(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
