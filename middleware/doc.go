// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: structured request/completion logging via slog
  - CORS: cross-origin headers plus preflight handling; allows the
    X-Session-Token header used by admin operations

# Helpers

  - JSONResponse: writes a JSON body with status code
  - ErrorResponse: writes the standard error envelope
  - ParseJSONBody: decodes a request body into a struct
  - GetClientIP: client IP from X-Forwarded-For, X-Real-IP, or RemoteAddr

Error responses use models.ErrorResponse:

	{"error": "Bad Request", "message": "name is required"}
*/
package middleware
