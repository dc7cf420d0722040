// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package geo provides an opaque destination-to-country lookup.

Lookup folds a free-text destination into its country when the destination
is known, and passes unknown destinations through lower-cased:

	geo.Lookup("Paris")  // "france"
	geo.Lookup("Narnia") // "narnia"

The table is intentionally small and static; the aggregation engine never
depends on it. Only the cross-tabulation view uses it to group city-level
choices into regions.
*/
package geo
