// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-analyzer/internal/document"
	"github.com/pdiddy/paper-analyzer/internal/export"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

const paperText = `Trust and Social Capital

We conducted interviews with residents and a survey (n = 300) of workers.
Following Putnam (2000), social capital is treated as a network resource
(Coleman, 1988). Our findings suggest that trust grows with participation.`

func defaultSettings(t *testing.T) settings {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	return loadSettings(v)
}

func writePaper(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.txt")
	require.NoError(t, os.WriteFile(path, []byte(paperText), 0o644))
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	s := defaultSettings(t)
	assert.Equal(t, types.DefaultAnalyzerConfig(), s.Analyzer)
	assert.Equal(t, types.DefaultReportConfig(), s.Report)
	assert.Equal(t, types.LogConfig{Level: "info", Format: "text"}, s.Log)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper-analyzer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`analyze:
  report_keywords: 8
  citation_samples: 3
log:
  level: debug
  format: json
`), 0o644))

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	s := loadSettings(v)
	assert.Equal(t, 8, s.Analyzer.ReportKeywords)
	assert.Equal(t, 8, s.Report.Keywords)
	assert.Equal(t, types.DefaultExportKeywords, s.Analyzer.ExportKeywords)
	assert.Equal(t, 3, s.Analyzer.CitationSamples)
	assert.Equal(t, types.LogConfig{Level: "debug", Format: "json"}, s.Log)
}

func TestAnalyzeFileWritesNarrative(t *testing.T) {
	var out, errOut bytes.Buffer
	path := writePaper(t)

	require.NoError(t, analyzeFile(&out, &errOut, path, "", defaultSettings(t)))

	assert.Contains(t, out.String(), "Analyzing: "+path)
	assert.Contains(t, out.String(), "1. Social Capital:")
	assert.Contains(t, out.String(), "  - Putnam (2000)")
	assert.Contains(t, out.String(), "ANALYSIS COMPLETE")
	assert.NotContains(t, out.String(), "Results exported to")
	assert.Contains(t, errOut.String(), "analysis complete")
}

func TestAnalyzeFileExports(t *testing.T) {
	var out, errOut bytes.Buffer
	s := defaultSettings(t)
	s.Analyzer.ExportKeywords = 2
	exportPath := filepath.Join(t.TempDir(), "analysis.json")

	require.NoError(t, analyzeFile(&out, &errOut, writePaper(t), exportPath, s))
	assert.Contains(t, out.String(), "Results exported to: "+exportPath)

	r, err := export.Load(exportPath)
	require.NoError(t, err)
	assert.Len(t, r.Keywords, 2)
	assert.Equal(t, 2, r.Citations.Total)
	n, ok := r.Concepts.Get("social capital")
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestAnalyzeFileMissingInput(t *testing.T) {
	var out, errOut bytes.Buffer
	err := analyzeFile(&out, &errOut, filepath.Join(t.TempDir(), "missing.txt"), "", defaultSettings(t))
	require.ErrorIs(t, err, document.ErrInputNotFound)
	assert.Empty(t, out.String())
}

func TestAnalyzeFileExportFailureKeepsReport(t *testing.T) {
	var out, errOut bytes.Buffer
	exportPath := filepath.Join(t.TempDir(), "no-such-dir", "analysis.json")

	err := analyzeFile(&out, &errOut, writePaper(t), exportPath, defaultSettings(t))
	require.ErrorIs(t, err, export.ErrExportWrite)
	assert.Contains(t, out.String(), "ANALYSIS COMPLETE")
}

func TestAnalyzeFileBadTaxonomy(t *testing.T) {
	s := defaultSettings(t)
	s.Analyzer.TaxonomyPath = filepath.Join(t.TempDir(), "none.yaml")

	var out, errOut bytes.Buffer
	err := analyzeFile(&out, &errOut, writePaper(t), "", s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading taxonomy")
}

func TestExportViewTrimsKeywords(t *testing.T) {
	r := &types.AnalysisReport{Keywords: []types.KeywordCount{{Word: "trust", Count: 3}, {Word: "class", Count: 2}}}

	v := exportView(r, 1)
	assert.Len(t, v.Keywords, 1)
	assert.Len(t, r.Keywords, 2)
	assert.Len(t, exportView(r, 5).Keywords, 2)
}

func TestRootRequiresOneArgument(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, nil))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"a.txt", "b.txt"}))
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"a.txt"}))
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		_ = rootCmd.Flags().Set("export", "")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootRejectsFlagsOtherThanExport(t *testing.T) {
	path := writePaper(t)
	for _, args := range [][]string{
		{path, "--top", "2"},
		{path, "--verbose"},
		{path, "--config", "other.yaml"},
	} {
		t.Run(args[1], func(t *testing.T) {
			_, err := executeRoot(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown flag")
		})
	}
}

func TestRootHasNoSubcommands(t *testing.T) {
	assert.False(t, rootCmd.HasSubCommands())
}

func TestRootAnalyzesFilesNamedLikeCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	for _, name := range []string{"version", "taxonomy", "help"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(paperText), 0o644))

			out, err := executeRoot(t, name)
			require.NoError(t, err)
			assert.Contains(t, out, "Analyzing: "+name)
			assert.Contains(t, out, "ANALYSIS COMPLETE")
		})
	}
}

func TestRootExportFlag(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "analysis.yaml")

	out, err := executeRoot(t, writePaper(t), "--export", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Results exported to: "+exportPath)

	r, err := export.Load(exportPath)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Citations.Total)
}

func TestRootReadsSettingsFromEnvironment(t *testing.T) {
	t.Setenv("PAPER_ANALYZER_ANALYZE_REPORT_KEYWORDS", "2")

	out, err := executeRoot(t, writePaper(t))
	require.NoError(t, err)

	ranked := regexp.MustCompile(`(?m)^\d+\. [^:\n]+: \d+ occurrences$`).FindAllString(out, -1)
	assert.Len(t, ranked, 2)
}
