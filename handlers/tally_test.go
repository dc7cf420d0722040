// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"reflect"
	"sync"
	"testing"

	"github.com/danielhkuo/travel-tally/models"
)

var defaultWeights = models.WeightConfig{ID: "default", Name: "Default (3-2-1)", First: 3, Second: 2, Third: 1}

func vote(name, first, second, third string) models.Vote {
	return models.Vote{ID: "id-" + name + first, Name: name, FirstChoice: first, SecondChoice: second, ThirdChoice: third}
}

func TestComputeResultsDeterministicExample(t *testing.T) {
	votes := []models.Vote{
		vote("A", "Paris", "Rome", ""),
		vote("B", "Rome", "Paris", ""),
	}

	results := ComputeResults(votes, defaultWeights)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	// Tie at 5 points; tie-break is normalized name ascending
	expected := []models.DestinationResult{
		{Name: "Paris", TotalPoints: 5, FirstVotes: 1, SecondVotes: 1, ThirdVotes: 0, Voters: []string{"A", "B"}},
		{Name: "Rome", TotalPoints: 5, FirstVotes: 1, SecondVotes: 1, ThirdVotes: 0, Voters: []string{"A", "B"}},
	}
	if !reflect.DeepEqual(results, expected) {
		t.Errorf("Unexpected results.\nGot:      %+v\nExpected: %+v", results, expected)
	}
}

func TestComputeResultsCaseInsensitiveMerge(t *testing.T) {
	votes := []models.Vote{
		vote("A", "paris", "", ""),
		vote("B", "Paris", "", ""),
		vote("C", "PARIS", "", ""),
	}

	results := ComputeResults(votes, defaultWeights)

	if len(results) != 1 {
		t.Fatalf("Expected one merged destination, got %d", len(results))
	}
	// First-seen casing wins and is never re-normalized
	if results[0].Name != "paris" {
		t.Errorf("Expected first-seen casing 'paris', got %q", results[0].Name)
	}
	if results[0].TotalPoints != 9 {
		t.Errorf("Expected 9 points, got %d", results[0].TotalPoints)
	}
	if results[0].FirstVotes != 3 {
		t.Errorf("Expected 3 first votes, got %d", results[0].FirstVotes)
	}
}

func TestComputeResultsSkipsEmptyChoices(t *testing.T) {
	votes := []models.Vote{
		vote("A", "Paris", "", "   "),
	}

	results := ComputeResults(votes, defaultWeights)

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].TotalPoints != 3 {
		t.Errorf("Expected only the first choice to score, got %d points", results[0].TotalPoints)
	}
	if results[0].ThirdVotes != 0 {
		t.Errorf("Whitespace-only choice must not count, got %d third votes", results[0].ThirdVotes)
	}
}

func TestComputeResultsExcludedVotes(t *testing.T) {
	excluded := vote("B", "Paris", "", "")
	excluded.Excluded = true
	votes := []models.Vote{
		vote("A", "Paris", "", ""),
		excluded,
	}

	results := ComputeResults(votes, defaultWeights)

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].TotalPoints != 3 {
		t.Errorf("Excluded vote must contribute nothing, got %d points", results[0].TotalPoints)
	}
	if len(results[0].Voters) != 1 || results[0].Voters[0] != "A" {
		t.Errorf("Excluded voter must not appear, got %v", results[0].Voters)
	}
}

func TestComputeResultsAllExcluded(t *testing.T) {
	v := vote("A", "Paris", "", "")
	v.Excluded = true

	results := ComputeResults([]models.Vote{v}, defaultWeights)
	if len(results) != 0 {
		t.Errorf("Expected empty results, got %+v", results)
	}
}

func TestComputeResultsVoterDeduplication(t *testing.T) {
	// Same destination ranked 1st and 3rd by the same voter: points and
	// counters accrue for both ranks, voter listed once.
	votes := []models.Vote{
		vote("A", "Tokyo", "Rome", "tokyo"),
	}

	results := ComputeResults(votes, defaultWeights)

	var tokyo *models.DestinationResult
	for i := range results {
		if results[i].Name == "Tokyo" {
			tokyo = &results[i]
		}
	}
	if tokyo == nil {
		t.Fatalf("Expected Tokyo in results: %+v", results)
	}
	if tokyo.TotalPoints != 4 {
		t.Errorf("Expected 3+1=4 points, got %d", tokyo.TotalPoints)
	}
	if tokyo.FirstVotes != 1 || tokyo.ThirdVotes != 1 {
		t.Errorf("Expected both rank counters, got first=%d third=%d", tokyo.FirstVotes, tokyo.ThirdVotes)
	}
	if len(tokyo.Voters) != 1 {
		t.Errorf("Expected voter listed once, got %v", tokyo.Voters)
	}
}

func TestComputeResultsVoterIdentityNotCaseFolded(t *testing.T) {
	votes := []models.Vote{
		vote("alice", "Paris", "", ""),
		vote("Alice", "Paris", "", ""),
	}

	results := ComputeResults(votes, defaultWeights)

	if len(results[0].Voters) != 2 {
		t.Errorf("Voter names dedupe by exact match, got %v", results[0].Voters)
	}
}

func TestComputeResultsPointsConservation(t *testing.T) {
	weights := models.WeightConfig{ID: "custom", Name: "Custom", First: 7, Second: 4, Third: 2}
	excluded := vote("D", "Oslo", "Paris", "Rome")
	excluded.Excluded = true
	votes := []models.Vote{
		vote("A", "Paris", "Rome", "Tokyo"),
		vote("B", "Rome", "", "Paris"),
		vote("C", "Lisbon", "paris", ""),
		excluded,
	}

	// Expected: per non-excluded vote, first non-empty + second + third
	expected := 0
	for _, v := range votes {
		if v.Excluded {
			continue
		}
		if v.FirstChoice != "" {
			expected += weights.First
		}
		if v.SecondChoice != "" {
			expected += weights.Second
		}
		if v.ThirdChoice != "" {
			expected += weights.Third
		}
	}

	total := 0
	for _, res := range ComputeResults(votes, weights) {
		total += res.TotalPoints
	}

	if total != expected {
		t.Errorf("Points not conserved: got %d, expected %d", total, expected)
	}
}

func TestComputeResultsOrdering(t *testing.T) {
	weights := models.WeightConfig{ID: "default", Name: "Default (3-2-1)", First: 3, Second: 2, Third: 1}
	votes := []models.Vote{
		vote("A", "Zanzibar", "", ""),
		vote("B", "Athens", "", ""),
		vote("C", "Lisbon", "Lisbon", ""),
	}

	results := ComputeResults(votes, weights)

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	// Lisbon leads on points; Athens before Zanzibar on the name tie-break
	expected := []string{"Lisbon", "Athens", "Zanzibar"}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("Expected order %v, got %v", expected, names)
	}
}

func TestComputeResultsZeroWeights(t *testing.T) {
	weights := models.WeightConfig{ID: "custom", Name: "Custom", First: 0, Second: 0, Third: 0}
	votes := []models.Vote{vote("A", "Paris", "Rome", "")}

	results := ComputeResults(votes, weights)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.TotalPoints != 0 {
			t.Errorf("Expected zero points under zero weights, got %d", r.TotalPoints)
		}
	}
	// Counters still accrue
	if results[0].FirstVotes+results[1].FirstVotes != 1 {
		t.Error("Expected rank counters independent of weights")
	}
}

func TestComputeResultsNoInputMutation(t *testing.T) {
	votes := []models.Vote{vote("A", "Paris", "Rome", "")}
	weights := defaultWeights

	first := ComputeResults(votes, weights)
	second := ComputeResults(votes, weights)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results across repeated calls")
	}

	// Returned collections are fresh: mutating one must not leak
	first[0].Voters[0] = "mutated"
	third := ComputeResults(votes, weights)
	if third[0].Voters[0] != "A" {
		t.Error("Expected a fresh voters slice per call")
	}
}

func TestComputeResultsConcurrentCalls(t *testing.T) {
	votes := []models.Vote{
		vote("A", "Paris", "Rome", "Tokyo"),
		vote("B", "Rome", "Paris", ""),
		vote("C", "Tokyo", "", "Paris"),
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results := ComputeResults(votes, defaultWeights)
			if len(results) != 3 {
				t.Errorf("Expected 3 results, got %d", len(results))
			}
		}()
	}
	wg.Wait()
}
