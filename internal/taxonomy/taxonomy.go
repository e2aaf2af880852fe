// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy holds the lexical tables the analysis engine matches
// against: methodology and theory categories, the flat concept list,
// research-component cue patterns, and the keyword ranker's stop words.
//
// The default tables are embedded from default.yaml. A replacement file in
// the same format can be supplied with Load. Tables are read-only once
// loaded; Default and Load hand out independent copies.
package taxonomy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed default.yaml
var defaultYAML []byte

// ErrInvalidTaxonomy is returned when taxonomy data fails validation.
var ErrInvalidTaxonomy = errors.New("invalid taxonomy")

// Category is a named keyword list. Keywords are literal surface forms and
// may contain spaces or punctuation.
type Category struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Component is a research component detected by a cue-phrase pattern.
type Component struct {
	Name string `json:"name" yaml:"name"`

	// Pattern is an RE2 expression, matched case-insensitively.
	Pattern string `json:"pattern" yaml:"pattern"`
}

// Taxonomy groups every table the analyzer uses. Slice order is
// declaration order.
type Taxonomy struct {
	Methodologies []Category  `json:"methodologies" yaml:"methodologies"`
	Theories      []Category  `json:"theories" yaml:"theories"`
	Concepts      []string    `json:"concepts" yaml:"concepts"`
	Components    []Component `json:"components" yaml:"components"`
	StopWords     []string    `json:"stop_words" yaml:"stop_words"`
}

var defaultTaxonomy = mustParse(defaultYAML)

func mustParse(data []byte) *Taxonomy {
	t, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("embedded taxonomy: %v", err))
	}
	return t
}

// Default returns a copy of the embedded taxonomy.
func Default() *Taxonomy {
	return defaultTaxonomy.Clone()
}

// Load reads and validates a taxonomy file. An empty path returns Default.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML taxonomy data and validates it. Unknown fields are
// rejected so that a misspelled section does not silently fall back to
// an empty table.
func Parse(data []byte) (*Taxonomy, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Taxonomy
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTaxonomy, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks names and keywords are non-empty, category and component
// names are unique within their table, and component patterns compile.
func (t *Taxonomy) Validate() error {
	if err := validateCategories("methodology", t.Methodologies); err != nil {
		return err
	}
	if err := validateCategories("theory", t.Theories); err != nil {
		return err
	}
	for i, c := range t.Concepts {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: concept %d is empty", ErrInvalidTaxonomy, i)
		}
	}

	seen := make(map[string]bool, len(t.Components))
	for i, c := range t.Components {
		if c.Name == "" {
			return fmt.Errorf("%w: component %d has no name", ErrInvalidTaxonomy, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate component %q", ErrInvalidTaxonomy, c.Name)
		}
		seen[c.Name] = true
		if c.Pattern == "" {
			return fmt.Errorf("%w: component %q has no pattern", ErrInvalidTaxonomy, c.Name)
		}
		if _, err := regexp.Compile(c.Pattern); err != nil {
			return fmt.Errorf("%w: component %q: %v", ErrInvalidTaxonomy, c.Name, err)
		}
	}
	return nil
}

func validateCategories(kind string, cats []Category) error {
	seen := make(map[string]bool, len(cats))
	for i, c := range cats {
		if c.Name == "" {
			return fmt.Errorf("%w: %s category %d has no name", ErrInvalidTaxonomy, kind, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate %s category %q", ErrInvalidTaxonomy, kind, c.Name)
		}
		seen[c.Name] = true
		for j, kw := range c.Keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("%w: %s %q keyword %d is empty", ErrInvalidTaxonomy, kind, c.Name, j)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of t.
func (t *Taxonomy) Clone() *Taxonomy {
	c := &Taxonomy{
		Methodologies: cloneCategories(t.Methodologies),
		Theories:      cloneCategories(t.Theories),
		Concepts:      append([]string(nil), t.Concepts...),
		Components:    append([]Component(nil), t.Components...),
		StopWords:     append([]string(nil), t.StopWords...),
	}
	return c
}

func cloneCategories(cats []Category) []Category {
	if cats == nil {
		return nil
	}
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// Keywords returns every distinct keyword across methodologies, theories,
// and concepts, in declaration order. Keywords differing only in case are
// listed once.
func (t *Taxonomy) Keywords() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(kw string) {
		key := strings.ToLower(kw)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, kw)
	}
	for _, c := range t.Methodologies {
		for _, kw := range c.Keywords {
			add(kw)
		}
	}
	for _, c := range t.Theories {
		for _, kw := range c.Keywords {
			add(kw)
		}
	}
	for _, kw := range t.Concepts {
		add(kw)
	}
	return out
}

// Marshal encodes t in the same YAML format Parse reads.
func (t *Taxonomy) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encoding taxonomy: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding taxonomy: %w", err)
	}
	return buf.Bytes(), nil
}
