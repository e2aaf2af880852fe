// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"sort"

	"github.com/pdiddy/paper-analyzer/internal/match"
	"github.com/pdiddy/paper-analyzer/internal/taxonomy"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// ScoreMethodology sums keyword matches for every methodology category.
// The result is dense: each category appears in declaration order, with a
// zero count when none of its keywords occur.
func ScoreMethodology(text match.Text, categories []taxonomy.Category) types.Counts {
	scores := make(types.Counts, len(categories))
	for i, c := range categories {
		total, _ := text.Terms(c.Keywords)
		scores[i] = types.Count{Name: c.Name, Count: total}
	}
	return scores
}

// PrimaryMethodology returns the category holding the strict maximum
// count. It reports false when no methodology was detected or when two or
// more categories share the maximum.
func PrimaryMethodology(scores types.Counts) (string, bool) {
	best, bestCount, tied := "", 0, false
	for _, s := range scores {
		switch {
		case s.Count > bestCount:
			best, bestCount, tied = s.Name, s.Count, false
		case s.Count == bestCount && s.Count > 0:
			tied = true
		}
	}
	if bestCount == 0 || tied {
		return "", false
	}
	return best, true
}

// Share is a methodology count with its percentage of all methodology
// mentions.
type Share struct {
	Name    string
	Count   int
	Percent float64
}

// MethodologyShares returns each category's share of the total mentions,
// ordered by descending count with declaration order breaking ties. It
// returns nil when the total is zero, since no percentage is meaningful.
func MethodologyShares(scores types.Counts) []Share {
	total := scores.Total()
	if total == 0 {
		return nil
	}
	shares := make([]Share, len(scores))
	for i, s := range scores {
		shares[i] = Share{
			Name:    s.Name,
			Count:   s.Count,
			Percent: float64(s.Count) / float64(total) * 100,
		}
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Count > shares[j].Count
	})
	return shares
}
