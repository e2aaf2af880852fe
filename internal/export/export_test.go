// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-analyzer/internal/analyze"
	"github.com/pdiddy/paper-analyzer/internal/logging"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

const paper = `Class Conflict and Social Capital

Drawing on Marx and Bourdieu (1986), we examine class struggle and social
capital among factory workers (Smith & Jones 2020). We conducted interviews
and a survey (n = 120); regression results were significant (p < 0.01).

Our findings suggest that habitus shapes trust (Lee et al., 2019). One
limitation is the sample; future research should compare regions.`

func analyzed(t *testing.T) *types.AnalysisReport {
	t.Helper()
	a, err := analyze.New(nil, types.AnalyzerConfig{},
		analyze.WithLogger(logging.Discard()),
		analyze.WithClock(func() time.Time { return time.Date(2026, 3, 1, 12, 30, 5, 0, time.UTC) }),
	)
	require.NoError(t, err)
	return a.Analyze("paper.txt", paper)
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.json", FormatJSON},
		{"out", FormatJSON},
		{"out.txt", FormatJSON},
		{"out.yaml", FormatYAML},
		{"OUT.YML", FormatYAML},
		{"report.md", FormatMarkdown},
		{"analysis.db", FormatSQLite},
		{"analysis.sqlite", FormatSQLite},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFor(tt.path))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	want := analyzed(t)
	require.NotEmpty(t, want.Theories)
	require.NotEmpty(t, want.Concepts)
	require.NotEmpty(t, want.Components)
	require.NotEmpty(t, want.Citations.Samples)

	for _, name := range []string{"analysis.json", "analysis.yaml", "analysis.db"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Write(want, path))

			got, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, want.FilePath, got.FilePath)
			assert.True(t, want.Timestamp.Equal(got.Timestamp), "timestamp %v != %v", want.Timestamp, got.Timestamp)
			assert.Equal(t, want.Summary, got.Summary)
			assert.Equal(t, want.Methodology, got.Methodology)
			assert.Equal(t, want.Theories, got.Theories)
			assert.Equal(t, want.Concepts, got.Concepts)
			assert.Equal(t, want.Components, got.Components)
			assert.Equal(t, want.Citations, got.Citations)
			assert.Equal(t, want.Keywords, got.Keywords)
		})
	}
}

func TestWriteJSONLayout(t *testing.T) {
	r := analyzed(t)
	path := filepath.Join(t.TempDir(), "analysis.json")
	require.NoError(t, Write(r, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "{\n  \"filepath\": \"paper.txt\",\n  \"timestamp\": \"2026-03-01T12:30:05Z\","), out)
	assert.Contains(t, out, "(Smith & Jones 2020)")
	assert.NotContains(t, out, `\u0026`)

	keys := []string{`"filepath"`, `"timestamp"`, `"summary"`, `"methodology"`, `"theories"`,
		`"concepts"`, `"components"`, `"citations"`, `"keywords"`}
	last := -1
	for _, k := range keys {
		i := strings.Index(out, k)
		require.Greater(t, i, last, k)
		last = i
	}

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	var citations map[string]any
	require.NoError(t, json.Unmarshal(raw["citations"], &citations))
	assert.Contains(t, citations, "total_citations")
	assert.Contains(t, citations, "unique_citations")
	assert.Contains(t, citations, "sample_citations")

	var keywords [][]any
	require.NoError(t, json.Unmarshal(raw["keywords"], &keywords))
	require.NotEmpty(t, keywords)
	assert.Len(t, keywords[0], 2)
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.md")
	require.NoError(t, Write(analyzed(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Sociology Paper Analysis")

	_, err = Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteSQLiteReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.db")
	r := analyzed(t)
	require.NoError(t, Write(r, path))

	r.FilePath = "second.txt"
	require.NoError(t, Write(r, path))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&n))
	assert.Equal(t, 1, n)

	var id, source string
	require.NoError(t, db.QueryRow(`SELECT id, filepath FROM analyses`).Scan(&id, &source))
	assert.Equal(t, "second.txt", source)
	assert.Len(t, id, 26)
}

func TestWriteSQLiteFailureKeepsPreviousExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.db")
	r := analyzed(t)
	require.NoError(t, Write(r, path))
	_, err := os.Stat(path + ".tmp")
	require.ErrorIs(t, err, fs.ErrNotExist)

	// A non-empty directory where the temporary database goes makes the
	// second export fail before anything is written.
	require.NoError(t, os.MkdirAll(filepath.Join(path+".tmp", "busy"), 0o755))

	second := *r
	second.FilePath = "second.txt"
	err = Write(&second, path)
	require.ErrorIs(t, err, ErrExportWrite)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "paper.txt", got.FilePath)
	assert.Equal(t, r.Concepts, got.Concepts)
}

func TestWriteErrors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "analysis.json")
	err := Write(analyzed(t), dir)
	require.ErrorIs(t, err, ErrExportWrite)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = Write(nil, filepath.Join(t.TempDir(), "analysis.json"))
	require.ErrorIs(t, err, ErrExportWrite)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "none.db"))
	require.Error(t, err)
}

func TestEncodeSQLiteUnsupported(t *testing.T) {
	_, err := Encode(analyzed(t), FormatSQLite)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
