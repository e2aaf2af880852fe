// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"fmt"
	"regexp"

	"github.com/pdiddy/paper-analyzer/internal/taxonomy"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// ComponentScanner counts research-component cue phrases (hypotheses,
// research questions, findings, limitations) in raw document text.
type ComponentScanner struct {
	names    []string
	patterns []*regexp.Regexp
}

// NewComponentScanner compiles each component pattern with
// case-insensitive matching. Patterns run over the unmodified document
// text, not the lowercased copy.
func NewComponentScanner(components []taxonomy.Component) (*ComponentScanner, error) {
	s := &ComponentScanner{
		names:    make([]string, len(components)),
		patterns: make([]*regexp.Regexp, len(components)),
	}
	for i, c := range components {
		re, err := regexp.Compile("(?i)" + c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling component %q: %w", c.Name, err)
		}
		s.names[i] = c.Name
		s.patterns[i] = re
	}
	return s, nil
}

// Scan returns the number of non-overlapping matches per component, in
// declaration order. Components without a match are omitted.
func (s *ComponentScanner) Scan(text string) types.Counts {
	found := types.Counts{}
	if text == "" {
		return found
	}
	for i, re := range s.patterns {
		if n := len(re.FindAllStringIndex(text, -1)); n > 0 {
			found = append(found, types.Count{Name: s.names[i], Count: n})
		}
	}
	return found
}
