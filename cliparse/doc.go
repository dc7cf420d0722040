// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

# Configuration Sources

Flags take precedence over environment variables:

	-p / PORT                         Server port (default: 3318)
	-d / DATABASE_URL                 Database URL or SQLite file path (required)
	-t / DATABASE_TYPE                sqlite or postgres (default: sqlite)
	-admin-password / ADMIN_PASSWORD  Initial admin password

The admin password seeds the credential store on first start only; after
that it is changed through the API. When unset, DefaultAdminPassword is
used and the server logs a warning.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		// handle error
	}
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
*/
package cliparse
