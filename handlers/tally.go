// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sort"
	"strings"

	"github.com/danielhkuo/travel-tally/models"
)

// tallyEntry pairs a destination's normalized key with its accumulating
// result. The key participates in tie-breaking; the result keeps the
// first-seen original casing as its display name.
type tallyEntry struct {
	key    string
	result *models.DestinationResult
}

// ComputeResults turns a set of ranked votes into destination standings
// under the given weight config.
//
// Votes flagged excluded contribute nothing. Each remaining vote's three
// choices are processed in rank order; empty or whitespace-only choices
// are skipped. Destinations are merged case-insensitively on the trimmed
// choice string, with the first-seen casing kept for display. A voter's
// name joins a destination's voter list at most once even when the voter
// ranked the same destination at multiple positions; points and rank
// counters still accrue for every position.
//
// Output is ordered by totalPoints descending, ties broken by normalized
// destination key ascending so results are reproducible. The function has
// no side effects and returns a fresh slice on every call.
func ComputeResults(votes []models.Vote, weights models.WeightConfig) []models.DestinationResult {
	byKey := make(map[string]*tallyEntry)
	var order []*tallyEntry

	rankPoints := [3]int{weights.First, weights.Second, weights.Third}

	for _, vote := range votes {
		if vote.Excluded {
			continue
		}

		choices := [3]string{vote.FirstChoice, vote.SecondChoice, vote.ThirdChoice}
		for rank, raw := range choices {
			choice := strings.TrimSpace(raw)
			if choice == "" {
				continue
			}
			key := strings.ToLower(choice)

			entry, ok := byKey[key]
			if !ok {
				// First write wins: the display name is never re-normalized
				// by later occurrences.
				entry = &tallyEntry{
					key: key,
					result: &models.DestinationResult{
						Name:   choice,
						Voters: []string{},
					},
				}
				byKey[key] = entry
				order = append(order, entry)
			}

			res := entry.result
			if !containsVoter(res.Voters, vote.Name) {
				res.Voters = append(res.Voters, vote.Name)
			}

			res.TotalPoints += rankPoints[rank]
			switch rank {
			case 0:
				res.FirstVotes++
			case 1:
				res.SecondVotes++
			case 2:
				res.ThirdVotes++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if a.result.TotalPoints != b.result.TotalPoints {
			return a.result.TotalPoints > b.result.TotalPoints
		}
		return a.key < b.key
	})

	results := make([]models.DestinationResult, len(order))
	for i, entry := range order {
		res := *entry.result
		res.Voters = append([]string(nil), entry.result.Voters...)
		results[i] = res
	}

	return results
}

// containsVoter reports whether name is already in voters. Exact string
// match - voter identity is not case-folded.
func containsVoter(voters []string, name string) bool {
	for _, v := range voters {
		if v == name {
			return true
		}
	}
	return false
}
