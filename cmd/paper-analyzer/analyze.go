// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/pdiddy/paper-analyzer/internal/analyze"
	"github.com/pdiddy/paper-analyzer/internal/document"
	"github.com/pdiddy/paper-analyzer/internal/export"
	"github.com/pdiddy/paper-analyzer/internal/logging"
	"github.com/pdiddy/paper-analyzer/internal/report"
	"github.com/pdiddy/paper-analyzer/internal/taxonomy"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// analyzeFile reads path, writes the narrative report to out, and exports
// the structured results when exportPath is set. Diagnostics go to errOut.
// An export failure is returned after the narrative has been written.
func analyzeFile(out, errOut io.Writer, path, exportPath string, s settings) error {
	logger := logging.New(errOut, s.Log.Level, s.Log.Format)

	tax, err := taxonomy.Load(s.Analyzer.TaxonomyPath)
	if err != nil {
		return fmt.Errorf("loading taxonomy: %w", err)
	}
	logger.Debug("taxonomy loaded", "version", version, "keywords", len(tax.Keywords()))

	analyzer, err := analyze.New(tax, s.Analyzer, analyze.WithLogger(logger))
	if err != nil {
		return err
	}

	text, err := document.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("document read", "path", path, "bytes", len(text))

	r := analyzer.Analyze(path, text)
	if err := report.NewNarrative(s.Report).Write(out, r); err != nil {
		return err
	}

	if exportPath == "" {
		return nil
	}
	if err := export.Write(exportView(r, analyzer.Config().ExportKeywords), exportPath); err != nil {
		return fmt.Errorf("exporting results: %w", err)
	}
	fmt.Fprintf(out, "Results exported to: %s\n", exportPath)
	return nil
}

// exportView returns a shallow copy of r keeping only the top n keywords.
func exportView(r *types.AnalysisReport, n int) *types.AnalysisReport {
	v := *r
	if len(v.Keywords) > n {
		v.Keywords = v.Keywords[:n]
	}
	return &v
}
