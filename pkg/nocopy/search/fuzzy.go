// Package search provides client-side fuzzy filtering of already-retrieved
// records.
package search

import (
	"math"
	"strings"

	"github.com/72nd/nocopy-go/pkg/nocopy/record"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultCutoff is the minimum score (0-100) a record needs to pass the
// filter.
const DefaultCutoff = 50

// Filter returns the records whose field values match the query with a
// score of at least cutoff. The score of a record is the best score over
// its fields: 100 for a substring hit, otherwise a normalized Levenshtein
// ratio. Nested mappings are flattened before scoring. Input order is
// preserved, the input list is never modified.
func Filter(records record.List, query string, cutoff int) record.List {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}
	var out record.List
	for _, rec := range records {
		if Score(rec, query) >= cutoff {
			out = append(out, rec)
		}
	}
	return out
}

// Score rates how well a record matches the query on a 0-100 scale.
func Score(rec *record.Record, query string) int {
	best := 0
	flat := record.Flatten(rec)
	for _, key := range flat.Keys() {
		v, _ := flat.Get(key)
		if v == nil {
			continue
		}
		if s := ratio(query, strings.ToLower(record.Format(v))); s > best {
			best = s
		}
	}
	return best
}

// ratio scores a candidate against the query. A substring hit counts as a
// full match, otherwise the score is derived from the Levenshtein distance
// relative to the longer of the two strings.
func ratio(query, candidate string) int {
	if candidate == "" {
		return 0
	}
	if strings.Contains(candidate, query) {
		return 100
	}
	longest := len([]rune(candidate))
	if l := len([]rune(query)); l > longest {
		longest = l
	}
	dist := fuzzy.LevenshteinDistance(query, candidate)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}
