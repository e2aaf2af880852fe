// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// minKeywordLen is the shortest token the ranker keeps.
const minKeywordLen = 4

// KeywordRanker ranks content words by frequency. It is read-only after
// construction and safe for concurrent use.
type KeywordRanker struct {
	stopwords map[string]struct{}
}

// NewKeywordRanker creates a ranker that drops the given stop words.
func NewKeywordRanker(stopwords []string) *KeywordRanker {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &KeywordRanker{stopwords: stops}
}

// IsStop reports whether word is a configured stop word.
func (k *KeywordRanker) IsStop(word string) bool {
	_, ok := k.stopwords[word]
	return ok
}

// Tokens returns the candidate keywords of text in order of appearance.
// The text is lowercased and split into maximal runs of word characters;
// a run is kept only when it is made of at least four ASCII letters a-z
// and is not a stop word. Runs containing digits, underscores, or other
// letters are dropped whole.
func (k *KeywordRanker) Tokens(text string) []string {
	var tokens []string
	lower := strings.ToLower(text)

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := lower[start:end]
		start = -1
		if len(word) < minKeywordLen || !isLowerASCII(word) || k.IsStop(word) {
			return
		}
		tokens = append(tokens, word)
	}

	for i, r := range lower {
		if r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(lower))
	return tokens
}

// Rank returns the n most frequent keywords, ordered by descending count
// with first appearance breaking ties. A non-positive n returns an empty
// ranking.
func (k *KeywordRanker) Rank(text string, n int) []types.KeywordCount {
	ranked := []types.KeywordCount{}
	if n <= 0 {
		return ranked
	}

	index := make(map[string]int)
	for _, tok := range k.Tokens(text) {
		if i, ok := index[tok]; ok {
			ranked[i].Count++
			continue
		}
		index[tok] = len(ranked)
		ranked = append(ranked, types.KeywordCount{Word: tok, Count: 1})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
