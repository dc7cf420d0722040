// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/travel-tally/auth"
	"github.com/danielhkuo/travel-tally/cliparse"
	"github.com/danielhkuo/travel-tally/db"
	"github.com/danielhkuo/travel-tally/models"
)

// TestAdminPassword seeds the test credential store.
const TestAdminPassword = "admin123"

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema and seeded defaults.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Single connection so every query sees the same in-memory database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	hash, err := auth.HashPassword(TestAdminPassword)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	if err := db.SeedDefaults(conn, hash); err != nil {
		t.Fatalf("Failed to seed defaults: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		AdminPassword: TestAdminPassword,
	}
}

// CreateTestSession issues a session token directly against the database
func CreateTestSession(t *testing.T, conn *sql.DB) string {
	t.Helper()

	token, _, err := auth.CreateSession(conn)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return token
}

// CreateTestVote inserts a vote and returns it
func CreateTestVote(t *testing.T, conn *sql.DB, name, first, second, third string) models.Vote {
	t.Helper()

	now := time.Now().UTC()
	v := models.Vote{
		ID:           uuid.NewString(),
		Name:         name,
		FirstChoice:  first,
		SecondChoice: second,
		ThirdChoice:  third,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := conn.Exec(`
		INSERT INTO vote (id, name, first_choice, second_choice, third_choice, created_at, updated_at, excluded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
	`, v.ID, v.Name, v.FirstChoice, v.SecondChoice, v.ThirdChoice, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return v
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
