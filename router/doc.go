// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all HTTP routes using Go 1.22+ method routing.

# Public Routes

	POST /votes            Submit a ballot
	GET  /results          Live standings (403 while hidden)
	GET  /config/presets   Built-in weight configs
	POST /admin/login      Exchange password for a session token
	GET  /health           Health check

# Admin Routes (X-Session-Token required)

	GET    /votes                List all live votes
	DELETE /votes/{id}           Permanently remove a vote
	POST   /votes/{id}/exclude   Toggle soft-delete exclusion
	POST   /rounds               Archive current round and reset
	GET    /rounds               Round history
	GET    /rounds/{number}      One archived round
	GET    /config               Active weight config
	PUT    /config               Update active weight config
	GET    /settings             Deployment settings
	PUT    /settings             Toggle hide-results
	GET    /export               Download export document
	POST   /import               Bulk import (all-or-nothing)
	GET    /crosstab             Region-by-voter matrix
	POST   /admin/logout         Revoke the session
	POST   /admin/password       Change the admin password

Every route is wrapped with request logging. Session enforcement happens
inside the handlers so auth failures share the standard error envelope.
*/
package router
