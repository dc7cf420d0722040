// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
)

// SessionTTL is how long an admin session stays valid.
const SessionTTL = 72 * time.Hour

// NewToken creates a random secure session token.
// URL-safe base64 without padding, 24 bytes = 192 bits of entropy.
func NewToken() (string, error) {
	b := make([]byte, 24)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// HashPassword creates a bcrypt hash for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword checks the candidate against the stored admin credential.
// Returns ErrInvalidCredentials on mismatch.
func VerifyPassword(db *sql.DB, candidate string) error {
	var hash string
	err := db.QueryRow(`SELECT password_hash FROM admin_credential WHERE id = 1`).Scan(&hash)
	if err == sql.ErrNoRows {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("failed to load admin credential: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// SetPassword replaces the stored admin credential and revokes every
// existing session, forcing a fresh login.
func SetPassword(db *sql.DB, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE admin_credential SET password_hash = $1, updated_at = $2 WHERE id = 1
	`, hash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update admin credential: %w", err)
	}

	_, err = tx.Exec(`DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	return tx.Commit()
}

// CreateSession issues a new session token with SessionTTL expiry.
func CreateSession(db *sql.DB) (string, time.Time, error) {
	token, err := NewToken()
	if err != nil {
		return "", time.Time{}, err
	}

	now := time.Now().UTC()
	expiresAt := now.Add(SessionTTL)
	_, err = db.Exec(`
		INSERT INTO session (token, created_at, expires_at)
		VALUES ($1, $2, $3)
	`, token, now, expiresAt)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to create session: %w", err)
	}

	return token, expiresAt, nil
}

// ValidateSession checks that the token exists and has not expired.
// Expired rows are deleted on sight. Returns ErrInvalidSession for any
// token that does not grant access, never hinting why.
func ValidateSession(db *sql.DB, token string) error {
	if token == "" {
		return ErrInvalidSession
	}

	var expiresAt time.Time
	err := db.QueryRow(`SELECT expires_at FROM session WHERE token = $1`, token).Scan(&expiresAt)
	if err == sql.ErrNoRows {
		return ErrInvalidSession
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if time.Now().UTC().After(expiresAt) {
		db.Exec(`DELETE FROM session WHERE token = $1`, token)
		return ErrInvalidSession
	}

	return nil
}

// DeleteSession logs out the given token. Deleting an unknown token is a
// no-op.
func DeleteSession(db *sql.DB, token string) error {
	_, err := db.Exec(`DELETE FROM session WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
