// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package geo

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		destination string
		expected    string
	}{
		{"Paris", "france"},
		{"paris", "france"},
		{"  Rome  ", "italy"},
		{"TOKYO", "japan"},
		{"Narnia", "narnia"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Lookup(tt.destination); got != tt.expected {
			t.Errorf("Lookup(%q) = %q, expected %q", tt.destination, got, tt.expected)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("france"); got != "France" {
		t.Errorf("Expected France, got %q", got)
	}
	if got := Title("united kingdom"); got != "United kingdom" {
		t.Errorf("Expected first letter only, got %q", got)
	}
	if got := Title(""); got != "" {
		t.Errorf("Expected empty passthrough, got %q", got)
	}
}
