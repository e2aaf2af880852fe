// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnalyzerConfig holds settings for a document analysis run.
type AnalyzerConfig struct {
	// TaxonomyPath optionally points at a YAML file that replaces the
	// embedded taxonomy tables. Empty means use the defaults.
	TaxonomyPath string `json:"taxonomy,omitempty" yaml:"taxonomy,omitempty"`

	// ReportKeywords is the number of top keywords shown in the narrative
	// report (default 15).
	ReportKeywords int `json:"report_keywords" yaml:"report_keywords"`

	// ExportKeywords is the number of top keywords kept in the structured
	// export (default 20).
	ExportKeywords int `json:"export_keywords" yaml:"export_keywords"`

	// CitationSamples caps the distinct citations kept as samples (default 10).
	CitationSamples int `json:"citation_samples" yaml:"citation_samples"`
}

// ReportConfig holds truncation limits for the narrative report.
type ReportConfig struct {
	// Concepts is the number of concepts listed (default 15).
	Concepts int `json:"concepts" yaml:"concepts"`

	// Terms is the number of related terms listed per theory (default 5).
	Terms int `json:"terms" yaml:"terms"`

	// Citations is the number of sample citations listed (default 5).
	Citations int `json:"citations" yaml:"citations"`

	// Keywords is the number of keywords listed (default 15).
	Keywords int `json:"keywords" yaml:"keywords"`
}

// LogConfig selects the structured logger's level and output format.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format"`
}

// Defaults for the analysis configuration.
const (
	DefaultReportKeywords  = 15
	DefaultExportKeywords  = 20
	DefaultCitationSamples = 10
	DefaultReportConcepts  = 15
	DefaultReportTerms     = 5
	DefaultReportCitations = 5
)

// DefaultAnalyzerConfig returns the analysis settings used when no
// configuration file overrides them.
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		ReportKeywords:  DefaultReportKeywords,
		ExportKeywords:  DefaultExportKeywords,
		CitationSamples: DefaultCitationSamples,
	}
}

// DefaultReportConfig returns the narrative report limits.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Concepts:  DefaultReportConcepts,
		Terms:     DefaultReportTerms,
		Citations: DefaultReportCitations,
		Keywords:  DefaultReportKeywords,
	}
}
