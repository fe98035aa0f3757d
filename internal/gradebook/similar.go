package gradebook

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxTypoDistance is the edit distance still treated as the same name.
const maxTypoDistance = 2

// SimilarSubjects returns the names in existing that look like candidate,
// closest first: case-insensitive equals, abbreviations in either direction
// and near misses within a couple of edits.
func SimilarSubjects(existing []string, candidate string) []string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil
	}
	type match struct {
		index    int
		distance int
	}
	seen := make(map[int]bool)
	var matches []match
	add := func(index int) {
		if seen[index] {
			return
		}
		seen[index] = true
		d := fuzzy.LevenshteinDistance(strings.ToLower(candidate), strings.ToLower(existing[index]))
		matches = append(matches, match{index: index, distance: d})
	}

	for _, rank := range fuzzy.RankFindNormalizedFold(candidate, existing) {
		add(rank.OriginalIndex)
	}
	lower := strings.ToLower(candidate)
	for i, name := range existing {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if fuzzy.MatchNormalizedFold(name, candidate) {
			add(i)
			continue
		}
		if fuzzy.LevenshteinDistance(lower, strings.ToLower(name)) <= maxTypoDistance {
			add(i)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].index < matches[j].index
	})
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = existing[m.index]
	}
	return out
}
