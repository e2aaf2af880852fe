// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes an AnalysisReport to a file and reads it back.
//
// The format follows the target's extension: .json (also the fallback for
// any other extension), .yaml or .yml, .md, and .db or .sqlite. Every
// format except Markdown can be loaded again with Load.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-analyzer/internal/report"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

var (
	// ErrExportWrite is returned when the export artifact cannot be written.
	ErrExportWrite = errors.New("export write error")

	// ErrUnsupportedFormat is returned by Load for formats it cannot read.
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// Format names an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatSQLite   Format = "sqlite"
)

// FormatFor picks the format for path from its extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".md", ".markdown":
		return FormatMarkdown
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// Write stores r at path in the format chosen by FormatFor. An existing
// file at path is replaced.
func Write(r *types.AnalysisReport, path string) error {
	if r == nil {
		return fmt.Errorf("%w: %s: no analysis results", ErrExportWrite, path)
	}

	var err error
	switch FormatFor(path) {
	case FormatSQLite:
		err = writeSQLite(r, path)
	default:
		var data []byte
		data, err = Encode(r, FormatFor(path))
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrExportWrite, path, err)
	}
	return nil
}

// Encode renders r in one of the file-based formats. FormatSQLite has no
// byte encoding and yields ErrUnsupportedFormat.
func Encode(r *types.AnalysisReport, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
	case FormatMarkdown:
		if err := report.WriteMarkdown(&buf, r); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return buf.Bytes(), nil
}

// Load reads a report previously written by Write.
func Load(path string) (*types.AnalysisReport, error) {
	format := FormatFor(path)
	switch format {
	case FormatMarkdown:
		return nil, fmt.Errorf("%w: %s cannot be loaded", ErrUnsupportedFormat, path)
	case FormatSQLite:
		return loadSQLite(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}

	var r types.AnalysisReport
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &r)
	default:
		err = json.Unmarshal(data, &r)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing export %s: %w", path, err)
	}
	return &r, nil
}
