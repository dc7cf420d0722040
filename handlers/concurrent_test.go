// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/travel-tally/models"
	"github.com/danielhkuo/travel-tally/testutil"
)

// TestConcurrentVoteSubmissions verifies that simultaneous submissions from
// different voters don't cause data corruption or duplicates
func TestConcurrentVoteSubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	voteHandler := NewVoteHandler(db, cfg)

	numVoters := 10

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			sub := models.SubmitVoteRequest{
				Name:         fmt.Sprintf("ConcurrentVoter%d", voterIdx),
				FirstChoice:  "Paris",
				SecondChoice: "Rome",
			}
			body, _ := json.Marshal(sub)
			req := httptest.NewRequest("POST", "/votes", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			voteHandler.SubmitVote(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful submissions, got %d", numVoters, successCount.Load())
	}

	var voteCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote").Scan(&voteCount); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if voteCount != numVoters {
		t.Errorf("Expected %d votes in database, got %d", numVoters, voteCount)
	}

	var uniqueIDs int
	if err := db.QueryRow("SELECT COUNT(DISTINCT id) FROM vote").Scan(&uniqueIDs); err != nil {
		t.Fatalf("Failed to count distinct ids: %v", err)
	}
	if uniqueIDs != numVoters {
		t.Errorf("Expected %d unique vote ids, got %d", numVoters, uniqueIDs)
	}
}

// TestConcurrentArchiveRequests verifies that two simultaneous archive
// requests produce two distinct round numbers and clear the live set once.
func TestConcurrentArchiveRequests(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	roundHandler := NewRoundHandler(db, cfg)
	token := testutil.CreateTestSession(t, db)

	testutil.CreateTestVote(t, db, "Alice", "Paris", "", "")
	testutil.CreateTestVote(t, db, "Bob", "Rome", "", "")

	var wg sync.WaitGroup
	var created atomic.Int32
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest("POST", "/rounds", nil)
			req.Header.Set("X-Session-Token", token)
			w := httptest.NewRecorder()
			roundHandler.ArchiveAndReset(w, req)
			if w.Code == http.StatusCreated {
				created.Add(1)
			}
		}()
	}
	wg.Wait()

	// Both may succeed (the second archiving an empty set) but round numbers
	// must never collide.
	if created.Load() == 0 {
		t.Fatal("Expected at least one archive to succeed")
	}

	var distinct, total int
	if err := db.QueryRow("SELECT COUNT(DISTINCT round_number), COUNT(*) FROM poll_round").Scan(&distinct, &total); err != nil {
		t.Fatalf("Failed to count rounds: %v", err)
	}
	if distinct != total {
		t.Errorf("Round numbers collided: %d rounds, %d distinct numbers", total, distinct)
	}

	var liveVotes int
	if err := db.QueryRow("SELECT COUNT(*) FROM vote").Scan(&liveVotes); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if liveVotes != 0 {
		t.Errorf("Expected live votes cleared, found %d", liveVotes)
	}
}
