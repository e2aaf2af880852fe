// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"regexp"

	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// Author-year citation patterns. Matches from all three are pooled in this
// order: every parenthetical match in text order, then every "et al."
// match, then every narrative match.
var (
	// parentheticalCiteRe matches (Durkheim, 1897), (Berger and Luckmann, 1966),
	// and (Smith & Jones 2020).
	parentheticalCiteRe = regexp.MustCompile(`\([A-Z][a-z]+(?:,?\s+(?:and|&)\s+[A-Z][a-z]+)*,?\s+\d{4}\)`)

	// etAlCiteRe matches (Smith et al., 2020) and (Smith et al. 2020).
	etAlCiteRe = regexp.MustCompile(`\([A-Z][a-z]+\s+et\s+al\.,?\s+\d{4}\)`)

	// narrativeCiteRe matches Goffman (1959).
	narrativeCiteRe = regexp.MustCompile(`[A-Z][a-z]+\s+\(\d{4}\)`)

	citationPatterns = []*regexp.Regexp{parentheticalCiteRe, etAlCiteRe, narrativeCiteRe}
)

// ExtractCitations pools the matches of every citation pattern. Total
// counts all matches including repeats; Unique counts distinct matched
// strings; Samples keeps up to limit distinct strings in first-occurrence
// order within the pool, so repeated runs report the same samples.
// A limit below zero keeps every distinct citation.
func ExtractCitations(text string, limit int) types.CitationReport {
	report := types.CitationReport{Samples: []string{}}
	seen := make(map[string]bool)

	for _, re := range citationPatterns {
		for _, m := range re.FindAllString(text, -1) {
			report.Total++
			if seen[m] {
				continue
			}
			seen[m] = true
			report.Unique++
			if limit < 0 || len(report.Samples) < limit {
				report.Samples = append(report.Samples, m)
			}
		}
	}
	return report
}
