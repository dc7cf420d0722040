// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/travel-tally/models"
)

// Field length limits
const (
	MaxNameLen   = 100
	MaxChoiceLen = 200
	MaxIDLen     = 100
	MaxWeight    = 1000
)

// injectionPattern rejects script tags, javascript: URLs, and inline event
// handler attributes.
var injectionPattern = regexp.MustCompile(`(?i)<script|</script|javascript:|on\w+\s*=`)

// Submission is a sanitized poll submission. All fields are trimmed;
// SecondChoice and ThirdChoice may be empty.
type Submission struct {
	Name         string
	FirstChoice  string
	SecondChoice string
	ThirdChoice  string
}

// ImportData is a fully-validated import document. Votes is nil when the
// document carries no votes key; an empty non-nil slice replaces the live
// set with nothing.
type ImportData struct {
	Votes        *[]models.Vote
	WeightConfig *models.WeightConfig
}

// ValidateSubmission trims and checks a raw submission. On failure it
// returns every violated rule; callers surface the first message to the
// user and must not store anything.
func ValidateSubmission(raw Submission) (Submission, []string) {
	var errs []string

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		errs = append(errs, "Name is required")
	} else if utf8.RuneCountInString(name) > MaxNameLen {
		errs = append(errs, fmt.Sprintf("Name must be %d characters or less", MaxNameLen))
	} else if injectionPattern.MatchString(name) {
		errs = append(errs, "Invalid characters in name")
	}

	first := strings.TrimSpace(raw.FirstChoice)
	if first == "" {
		errs = append(errs, "First choice is required")
	} else if utf8.RuneCountInString(first) > MaxChoiceLen {
		errs = append(errs, fmt.Sprintf("Destination must be %d characters or less", MaxChoiceLen))
	} else if injectionPattern.MatchString(first) {
		errs = append(errs, "Invalid characters in first choice")
	}

	second, secondErrs := optionalChoice(raw.SecondChoice)
	errs = append(errs, secondErrs...)
	third, thirdErrs := optionalChoice(raw.ThirdChoice)
	errs = append(errs, thirdErrs...)

	if len(errs) > 0 {
		return Submission{}, errs
	}

	return Submission{
		Name:         name,
		FirstChoice:  first,
		SecondChoice: second,
		ThirdChoice:  third,
	}, nil
}

// optionalChoice trims and checks a second/third choice, which may be empty.
func optionalChoice(raw string) (string, []string) {
	choice := strings.TrimSpace(raw)
	if choice == "" {
		return "", nil
	}
	var errs []string
	if utf8.RuneCountInString(choice) > MaxChoiceLen {
		errs = append(errs, fmt.Sprintf("Maximum %d characters allowed", MaxChoiceLen))
	}
	if injectionPattern.MatchString(choice) {
		errs = append(errs, "Invalid characters detected")
	}
	return choice, errs
}

// importDocument mirrors the export document shape with pointer fields so
// an absent key is distinguishable from an empty value.
type importDocument struct {
	Votes        *[]models.Vote       `json:"votes"`
	WeightConfig *models.WeightConfig `json:"weightConfig"`
	ExportedAt   *string              `json:"exportedAt"`
}

// ValidateImportDocument parses and structurally validates an entire export
// document. Every field of every record is checked before anything is
// accepted; a single violation rejects the whole document.
func ValidateImportDocument(raw []byte) (*ImportData, []string) {
	var doc importDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, []string{"Invalid JSON document"}
	}

	if doc.Votes == nil && doc.WeightConfig == nil {
		return nil, []string{"Document contains no importable data"}
	}

	var errs []string

	if doc.Votes != nil {
		seen := make(map[string]int, len(*doc.Votes))
		for i, v := range *doc.Votes {
			errs = append(errs, validateImportVote(i, v)...)
			if v.ID == "" {
				continue
			}
			if prev, dup := seen[v.ID]; dup {
				errs = append(errs, fmt.Sprintf("votes[%d]: duplicate id %q (also votes[%d])", i, v.ID, prev))
			} else {
				seen[v.ID] = i
			}
		}
	}

	if doc.WeightConfig != nil {
		errs = append(errs, validateImportWeightConfig(*doc.WeightConfig)...)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &ImportData{Votes: doc.Votes, WeightConfig: doc.WeightConfig}, nil
}

func validateImportVote(i int, v models.Vote) []string {
	var errs []string
	field := func(msg string) string {
		return fmt.Sprintf("votes[%d]: %s", i, msg)
	}

	if v.ID == "" {
		errs = append(errs, field("id is required"))
	} else if utf8.RuneCountInString(v.ID) > MaxIDLen {
		errs = append(errs, field(fmt.Sprintf("id must be %d characters or less", MaxIDLen)))
	}

	if strings.TrimSpace(v.Name) == "" {
		errs = append(errs, field("name is required"))
	} else if utf8.RuneCountInString(v.Name) > MaxChoiceLen {
		errs = append(errs, field(fmt.Sprintf("name must be %d characters or less", MaxChoiceLen)))
	} else if injectionPattern.MatchString(v.Name) {
		errs = append(errs, field("invalid characters in name"))
	}

	for _, c := range []struct {
		label string
		value string
	}{
		{"firstChoice", v.FirstChoice},
		{"secondChoice", v.SecondChoice},
		{"thirdChoice", v.ThirdChoice},
	} {
		if utf8.RuneCountInString(c.value) > MaxChoiceLen {
			errs = append(errs, field(fmt.Sprintf("%s must be %d characters or less", c.label, MaxChoiceLen)))
		} else if injectionPattern.MatchString(c.value) {
			errs = append(errs, field(fmt.Sprintf("invalid characters in %s", c.label)))
		}
	}

	if v.CreatedAt.IsZero() {
		errs = append(errs, field("createdAt is required"))
	}
	if v.UpdatedAt.IsZero() {
		errs = append(errs, field("updatedAt is required"))
	}

	return errs
}

func validateImportWeightConfig(wc models.WeightConfig) []string {
	var errs []string

	if wc.ID == "" {
		errs = append(errs, "weightConfig: id is required")
	} else if utf8.RuneCountInString(wc.ID) > MaxIDLen {
		errs = append(errs, fmt.Sprintf("weightConfig: id must be %d characters or less", MaxIDLen))
	}

	if strings.TrimSpace(wc.Name) == "" {
		errs = append(errs, "weightConfig: name is required")
	} else if utf8.RuneCountInString(wc.Name) > MaxNameLen {
		errs = append(errs, fmt.Sprintf("weightConfig: name must be %d characters or less", MaxNameLen))
	}

	for _, p := range []struct {
		label string
		value int
	}{
		{"first", wc.First},
		{"second", wc.Second},
		{"third", wc.Third},
	} {
		if p.value < 0 {
			errs = append(errs, fmt.Sprintf("weightConfig: %s must be non-negative", p.label))
		} else if p.value > MaxWeight {
			errs = append(errs, fmt.Sprintf("weightConfig: %s must be %d or less", p.label, MaxWeight))
		}
	}

	return errs
}

// ValidateWeightConfig checks a weight config update against the same
// bounds the import path enforces.
func ValidateWeightConfig(wc models.WeightConfig) []string {
	return validateImportWeightConfig(wc)
}
