// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"sort"
	"strings"

	"github.com/pdiddy/paper-analyzer/internal/match"
	"github.com/pdiddy/paper-analyzer/internal/taxonomy"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// IdentifyTheories sums keyword matches per theory category and records
// which keywords matched. Theories without a match are omitted. The result
// is ordered by descending count; equal counts keep declaration order.
func IdentifyTheories(text match.Text, categories []taxonomy.Category) types.TheoryFindings {
	findings := types.TheoryFindings{}
	for _, c := range categories {
		total, terms := text.Terms(c.Keywords)
		if total == 0 {
			continue
		}
		findings = append(findings, types.TheoryFinding{
			Name:  c.Name,
			Count: total,
			Terms: terms,
		})
	}
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Count > findings[j].Count
	})
	return findings
}

// ExtractConcepts counts each concept phrase independently. Concepts
// without a match are omitted; the rest are ordered by descending count
// with list order breaking ties.
func ExtractConcepts(text match.Text, concepts []string) types.Counts {
	found := types.Counts{}
	seen := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		if n := text.Count(c); n > 0 {
			found = append(found, types.Count{Name: c, Count: n})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Count > found[j].Count
	})
	return found
}
