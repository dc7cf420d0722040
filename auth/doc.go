// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin credential and session management.

# Passwords

The single admin credential is stored as a bcrypt hash:

	hash, err := auth.HashPassword(password)
	err = auth.VerifyPassword(db, candidate)

VerifyPassword returns ErrInvalidCredentials on mismatch without revealing
whether a credential row exists. SetPassword replaces the hash and revokes
all sessions in one transaction, so a password change forces re-login
everywhere.

# Sessions

Sessions are opaque random 24-byte (192-bit) tokens stored server-side
with a 72 hour expiry:

	token, expiresAt, err := auth.CreateSession(db)
	err = auth.ValidateSession(db, token)
	err = auth.DeleteSession(db, token)

Tokens are URL-safe base64 without padding. Store-backed sessions (rather
than signed stateless tokens) allow immediate revocation on logout and on
password change.

Any failed validation returns ErrInvalidSession; callers surface it as a
generic authentication failure.
*/
package auth
