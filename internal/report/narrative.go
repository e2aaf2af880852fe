// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an AnalysisReport for people: the console
// narrative printed after every analysis, and a Markdown document.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/paper-analyzer/internal/analyze"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

const ruleWidth = 70

// Empty-section messages shared by the narrative and Markdown renderings.
const (
	noMethodology = "No clear methodology indicators found."
	noTheories    = "No major sociological theories explicitly identified."
	noConcepts    = "No standard sociological concepts identified."
	noComponents  = "No clear research components identified."
)

// timeLayout is how analysis dates appear in rendered reports.
const timeLayout = "2006-01-02 15:04:05"

// Narrative writes the seven-section console report.
type Narrative struct {
	cfg types.ReportConfig
}

// NewNarrative returns a Narrative using cfg's truncation limits. Zero
// limits fall back to types.DefaultReportConfig.
func NewNarrative(cfg types.ReportConfig) *Narrative {
	return &Narrative{cfg: withDefaults(cfg)}
}

// Write renders r to w. Nothing is written until the whole report is
// formatted, so a failing writer never receives a partial report.
func (n *Narrative) Write(w io.Writer, r *types.AnalysisReport) error {
	var b strings.Builder
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintf(&b, "\n%s\nSOCIOLOGY PAPER ANALYZER\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Analyzing: %s\n", r.FilePath)
	fmt.Fprintf(&b, "Analysis Date: %s\n\n", r.Timestamp.Format(timeLayout))

	section := func(title string) {
		fmt.Fprintf(&b, "%s\n%s\n%s\n", rule, title, rule)
	}

	section("1. DOCUMENT STATISTICS")
	s := r.Summary
	fmt.Fprintf(&b, "Word Count: %s\n", humanize.Comma(int64(s.WordCount)))
	fmt.Fprintf(&b, "Sentence Count: %s\n", humanize.Comma(int64(s.SentenceCount)))
	fmt.Fprintf(&b, "Average Sentence Length: %.1f words\n", s.AvgSentenceLength)
	fmt.Fprintf(&b, "Paragraph Count: %s\n", humanize.Comma(int64(s.ParagraphCount)))

	b.WriteString("\n")
	section("2. RESEARCH METHODOLOGY")
	if shares := analyze.MethodologyShares(r.Methodology); shares != nil {
		for _, sh := range shares {
			fmt.Fprintf(&b, "%s: %d mentions (%.1f%%)\n", DisplayName(sh.Name), sh.Count, sh.Percent)
		}
		primary := "Undetermined"
		if name, ok := analyze.PrimaryMethodology(r.Methodology); ok {
			primary = DisplayName(name)
		}
		fmt.Fprintf(&b, "\nPrimary Methodology: %s\n", primary)
	} else {
		b.WriteString(noMethodology + "\n")
	}

	b.WriteString("\n")
	section("3. SOCIOLOGICAL THEORIES")
	if len(r.Theories) == 0 {
		b.WriteString(noTheories + "\n")
	}
	for _, f := range r.Theories {
		fmt.Fprintf(&b, "\n%s:\n", DisplayName(f.Name))
		fmt.Fprintf(&b, "  Mentions: %d\n", f.Count)
		fmt.Fprintf(&b, "  Related terms: %s\n", strings.Join(head(f.Terms, n.cfg.Terms), ", "))
	}

	b.WriteString("\n")
	section("4. KEY SOCIOLOGICAL CONCEPTS")
	if len(r.Concepts) == 0 {
		b.WriteString(noConcepts + "\n")
	}
	for i, c := range head(r.Concepts, n.cfg.Concepts) {
		fmt.Fprintf(&b, "%d. %s: %d mentions\n", i+1, DisplayName(c.Name), c.Count)
	}

	b.WriteString("\n")
	section("5. RESEARCH COMPONENTS")
	if len(r.Components) == 0 {
		b.WriteString(noComponents + "\n")
	}
	for _, c := range r.Components {
		fmt.Fprintf(&b, "%s: %d mentions\n", DisplayName(c.Name), c.Count)
	}

	b.WriteString("\n")
	section("6. CITATION ANALYSIS")
	fmt.Fprintf(&b, "Total Citations Found: %d\n", r.Citations.Total)
	fmt.Fprintf(&b, "Unique Citations: %d\n", r.Citations.Unique)
	if samples := head(r.Citations.Samples, n.cfg.Citations); len(samples) > 0 {
		b.WriteString("\nSample Citations:\n")
		for _, c := range samples {
			fmt.Fprintf(&b, "  - %s\n", c)
		}
	}

	b.WriteString("\n")
	section("7. TOP KEYWORDS")
	for i, k := range head(r.Keywords, n.cfg.Keywords) {
		fmt.Fprintf(&b, "%d. %s: %d occurrences\n", i+1, k.Word, k.Count)
	}

	fmt.Fprintf(&b, "\n%s\nANALYSIS COMPLETE\n%s\n\n", rule, rule)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// DisplayName turns a taxonomy name such as "mixed_methods" or
// "social capital" into a title-cased label.
func DisplayName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

func head[T any](s []T, n int) []T {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func withDefaults(cfg types.ReportConfig) types.ReportConfig {
	d := types.DefaultReportConfig()
	if cfg.Concepts <= 0 {
		cfg.Concepts = d.Concepts
	}
	if cfg.Terms <= 0 {
		cfg.Terms = d.Terms
	}
	if cfg.Citations <= 0 {
		cfg.Citations = d.Citations
	}
	if cfg.Keywords <= 0 {
		cfg.Keywords = d.Keywords
	}
	return cfg
}
