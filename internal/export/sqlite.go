// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"

	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// Kinds stored in the counts table.
const (
	kindMethodology = "methodology"
	kindConcept     = "concept"
	kindComponent   = "component"
)

var schema = []string{
	`CREATE TABLE analyses (
		id TEXT PRIMARY KEY,
		filepath TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		word_count INTEGER NOT NULL,
		sentence_count INTEGER NOT NULL,
		avg_sentence_length REAL NOT NULL,
		paragraph_count INTEGER NOT NULL,
		total_citations INTEGER NOT NULL,
		unique_citations INTEGER NOT NULL
	)`,
	`CREATE TABLE counts (
		analysis_id TEXT NOT NULL REFERENCES analyses(id),
		kind TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (analysis_id, kind, position)
	)`,
	`CREATE TABLE theories (
		analysis_id TEXT NOT NULL REFERENCES analyses(id),
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		count INTEGER NOT NULL,
		terms TEXT NOT NULL,
		PRIMARY KEY (analysis_id, position)
	)`,
	`CREATE TABLE citation_samples (
		analysis_id TEXT NOT NULL REFERENCES analyses(id),
		position INTEGER NOT NULL,
		citation TEXT NOT NULL,
		PRIMARY KEY (analysis_id, position)
	)`,
	`CREATE TABLE keywords (
		analysis_id TEXT NOT NULL REFERENCES analyses(id),
		position INTEGER NOT NULL,
		word TEXT NOT NULL,
		count INTEGER NOT NULL,
		PRIMARY KEY (analysis_id, position)
	)`,
}

// writeSQLite replaces path with a fresh database holding r. The database
// is built beside path and renamed over it only after the commit, so a
// failed export leaves any previous artifact untouched.
func writeSQLite(r *types.AnalysisReport, path string) error {
	tmp := path + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing stale temporary export: %w", err)
	}
	if err := buildSQLite(r, tmp); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing export: %w", err)
	}
	return nil
}

// buildSQLite writes r into a new database at path.
func buildSQLite(r *types.AnalysisReport, path string) error {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	id := ulid.Make().String()
	s := r.Summary
	_, err = tx.Exec(`INSERT INTO analyses
		(id, filepath, timestamp, word_count, sentence_count, avg_sentence_length,
		 paragraph_count, total_citations, unique_citations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.FilePath, r.Timestamp.Format(time.RFC3339Nano),
		s.WordCount, s.SentenceCount, s.AvgSentenceLength, s.ParagraphCount,
		r.Citations.Total, r.Citations.Unique,
	)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}

	groups := []struct {
		kind   string
		counts types.Counts
	}{
		{kindMethodology, r.Methodology},
		{kindConcept, r.Concepts},
		{kindComponent, r.Components},
	}
	for _, g := range groups {
		for i, c := range g.counts {
			if _, err := tx.Exec(`INSERT INTO counts (analysis_id, kind, position, name, count)
				VALUES (?, ?, ?, ?, ?)`, id, g.kind, i, c.Name, c.Count); err != nil {
				return fmt.Errorf("inserting %s %q: %w", g.kind, c.Name, err)
			}
		}
	}

	for i, f := range r.Theories {
		terms, err := json.Marshal(f.Terms)
		if err != nil {
			return fmt.Errorf("encoding terms for %q: %w", f.Name, err)
		}
		if _, err := tx.Exec(`INSERT INTO theories (analysis_id, position, name, count, terms)
			VALUES (?, ?, ?, ?, ?)`, id, i, f.Name, f.Count, string(terms)); err != nil {
			return fmt.Errorf("inserting theory %q: %w", f.Name, err)
		}
	}

	for i, c := range r.Citations.Samples {
		if _, err := tx.Exec(`INSERT INTO citation_samples (analysis_id, position, citation)
			VALUES (?, ?, ?)`, id, i, c); err != nil {
			return fmt.Errorf("inserting citation sample: %w", err)
		}
	}

	for i, k := range r.Keywords {
		if _, err := tx.Exec(`INSERT INTO keywords (analysis_id, position, word, count)
			VALUES (?, ?, ?, ?)`, id, i, k.Word, k.Count); err != nil {
			return fmt.Errorf("inserting keyword %q: %w", k.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

// loadSQLite reads the analysis stored in the database at path.
func loadSQLite(path string) (*types.AnalysisReport, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading export %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var (
		r  types.AnalysisReport
		id string
		ts string
	)
	err = db.QueryRow(`SELECT id, filepath, timestamp, word_count, sentence_count,
		avg_sentence_length, paragraph_count, total_citations, unique_citations
		FROM analyses LIMIT 1`).Scan(
		&id, &r.FilePath, &ts,
		&r.Summary.WordCount, &r.Summary.SentenceCount, &r.Summary.AvgSentenceLength,
		&r.Summary.ParagraphCount, &r.Citations.Total, &r.Citations.Unique,
	)
	if err != nil {
		return nil, fmt.Errorf("querying analysis: %w", err)
	}
	if r.Timestamp, err = time.Parse(time.RFC3339Nano, ts); err != nil {
		return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
	}

	for _, dst := range []struct {
		kind string
		out  *types.Counts
	}{
		{kindMethodology, &r.Methodology},
		{kindConcept, &r.Concepts},
		{kindComponent, &r.Components},
	} {
		if *dst.out, err = queryCounts(db, id, dst.kind); err != nil {
			return nil, err
		}
	}

	if r.Theories, err = queryTheories(db, id); err != nil {
		return nil, err
	}
	if r.Citations.Samples, err = querySamples(db, id); err != nil {
		return nil, err
	}
	if r.Keywords, err = queryKeywords(db, id); err != nil {
		return nil, err
	}
	return &r, nil
}

func queryCounts(db *sql.DB, id, kind string) (types.Counts, error) {
	rows, err := db.Query(`SELECT name, count FROM counts
		WHERE analysis_id = ? AND kind = ? ORDER BY position`, id, kind)
	if err != nil {
		return nil, fmt.Errorf("querying %s counts: %w", kind, err)
	}
	defer rows.Close()

	out := types.Counts{}
	for rows.Next() {
		var c types.Count
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning %s count: %w", kind, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func queryTheories(db *sql.DB, id string) (types.TheoryFindings, error) {
	rows, err := db.Query(`SELECT name, count, terms FROM theories
		WHERE analysis_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying theories: %w", err)
	}
	defer rows.Close()

	out := types.TheoryFindings{}
	for rows.Next() {
		var (
			f     types.TheoryFinding
			terms string
		)
		if err := rows.Scan(&f.Name, &f.Count, &terms); err != nil {
			return nil, fmt.Errorf("scanning theory: %w", err)
		}
		if err := json.Unmarshal([]byte(terms), &f.Terms); err != nil {
			return nil, fmt.Errorf("decoding terms for %q: %w", f.Name, err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func querySamples(db *sql.DB, id string) ([]string, error) {
	rows, err := db.Query(`SELECT citation FROM citation_samples
		WHERE analysis_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying citation samples: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning citation sample: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func queryKeywords(db *sql.DB, id string) ([]types.KeywordCount, error) {
	rows, err := db.Query(`SELECT word, count FROM keywords
		WHERE analysis_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("querying keywords: %w", err)
	}
	defer rows.Close()

	out := []types.KeywordCount{}
	for rows.Next() {
		var k types.KeywordCount
		if err := rows.Scan(&k.Word, &k.Count); err != nil {
			return nil, fmt.Errorf("scanning keyword: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}
