// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// Configuration keys.
const (
	keyConfig          = "config"
	keyTaxonomy        = "analyze.taxonomy"
	keyReportKeywords  = "analyze.report_keywords"
	keyExportKeywords  = "analyze.export_keywords"
	keyCitationSamples = "analyze.citation_samples"
	keyReportConcepts  = "analyze.report_concepts"
	keyReportSamples   = "analyze.report_samples"
	keyReportTerms     = "analyze.report_terms"
	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
)

// settings is the effective configuration of one run.
type settings struct {
	Analyzer types.AnalyzerConfig
	Report   types.ReportConfig
	Log      types.LogConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTaxonomy, "")
	v.SetDefault(keyReportKeywords, types.DefaultReportKeywords)
	v.SetDefault(keyExportKeywords, types.DefaultExportKeywords)
	v.SetDefault(keyCitationSamples, types.DefaultCitationSamples)
	v.SetDefault(keyReportConcepts, types.DefaultReportConcepts)
	v.SetDefault(keyReportSamples, types.DefaultReportCitations)
	v.SetDefault(keyReportTerms, types.DefaultReportTerms)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
}

func loadSettings(v *viper.Viper) settings {
	return settings{
		Analyzer: types.AnalyzerConfig{
			TaxonomyPath:    v.GetString(keyTaxonomy),
			ReportKeywords:  v.GetInt(keyReportKeywords),
			ExportKeywords:  v.GetInt(keyExportKeywords),
			CitationSamples: v.GetInt(keyCitationSamples),
		},
		Report: types.ReportConfig{
			Concepts:  v.GetInt(keyReportConcepts),
			Terms:     v.GetInt(keyReportTerms),
			Citations: v.GetInt(keyReportSamples),
			Keywords:  v.GetInt(keyReportKeywords),
		},
		Log: types.LogConfig{
			Level:  v.GetString(keyLogLevel),
			Format: v.GetString(keyLogFormat),
		},
	}
}
