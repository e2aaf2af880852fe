// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze profiles the content of a research document: dominant
// methodology, sociological theories, key concepts, research components,
// citations, top keywords, and basic document statistics.
//
// Every component is a pure function of the input text and the read-only
// taxonomy. The Analyzer runs them concurrently and merges their results
// into one AnalysisReport.
package analyze

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/paper-analyzer/internal/match"
	"github.com/pdiddy/paper-analyzer/internal/taxonomy"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// Analyzer produces AnalysisReports from document text. It holds only
// read-only state and is safe for concurrent use.
type Analyzer struct {
	tax        *taxonomy.Taxonomy
	components *ComponentScanner
	keywords   *KeywordRanker
	cfg        types.AnalyzerConfig
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for per-component debug output.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = l
	}
}

// WithClock overrides the clock that stamps each report.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// New builds an Analyzer over tax. Zero values in cfg fall back to the
// defaults from types.DefaultAnalyzerConfig.
func New(tax *taxonomy.Taxonomy, cfg types.AnalyzerConfig, opts ...Option) (*Analyzer, error) {
	if tax == nil {
		tax = taxonomy.Default()
	}
	scanner, err := NewComponentScanner(tax.Components)
	if err != nil {
		return nil, fmt.Errorf("building component scanner: %w", err)
	}

	defaults := types.DefaultAnalyzerConfig()
	if cfg.ReportKeywords <= 0 {
		cfg.ReportKeywords = defaults.ReportKeywords
	}
	if cfg.ExportKeywords <= 0 {
		cfg.ExportKeywords = defaults.ExportKeywords
	}
	if cfg.CitationSamples <= 0 {
		cfg.CitationSamples = defaults.CitationSamples
	}

	a := &Analyzer{
		tax:        tax,
		components: scanner,
		keywords:   NewKeywordRanker(tax.StopWords),
		cfg:        cfg,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Config returns the effective configuration after defaults are applied.
func (a *Analyzer) Config() types.AnalyzerConfig {
	return a.cfg
}

// KeywordLimit is the number of keywords kept in a report: the larger of
// the narrative and export limits. Rankings are prefix-stable, so the
// narrative report shows the first ReportKeywords entries of the same list.
func (a *Analyzer) KeywordLimit() int {
	return max(a.cfg.ReportKeywords, a.cfg.ExportKeywords)
}

// Analyze runs every component over text and returns the merged report.
// source identifies the document in the report. An empty text is valid and
// yields zero statistics and empty results.
func (a *Analyzer) Analyze(source, text string) *types.AnalysisReport {
	report := &types.AnalysisReport{
		FilePath:  source,
		Timestamp: a.now(),
	}
	lowered := match.NewText(text)

	var g errgroup.Group
	run := func(name string, fn func()) {
		g.Go(func() error {
			start := time.Now()
			fn()
			a.logger.Debug("component finished", "component", name, "elapsed", time.Since(start))
			return nil
		})
	}

	run("summary", func() { report.Summary = Summarize(text) })
	run("methodology", func() { report.Methodology = ScoreMethodology(lowered, a.tax.Methodologies) })
	run("theories", func() { report.Theories = IdentifyTheories(lowered, a.tax.Theories) })
	run("concepts", func() { report.Concepts = ExtractConcepts(lowered, a.tax.Concepts) })
	run("components", func() { report.Components = a.components.Scan(text) })
	run("citations", func() { report.Citations = ExtractCitations(text, a.cfg.CitationSamples) })
	run("keywords", func() { report.Keywords = a.keywords.Rank(text, a.KeywordLimit()) })

	// Components never fail; Wait only joins the goroutines.
	_ = g.Wait()

	a.logger.Info("analysis complete",
		"source", source,
		"words", report.Summary.WordCount,
		"theories", len(report.Theories),
		"concepts", len(report.Concepts),
		"citations", report.Citations.Total,
	)
	return report
}
