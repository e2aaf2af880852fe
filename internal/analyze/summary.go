// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// minSentenceLen filters out fragments left by abbreviations, initials,
// and numbering when splitting on punctuation.
const minSentenceLen = 20

// Summarize computes word, sentence, and paragraph statistics.
//
// Sentence detection is a heuristic: the text is split on runs of '.', '!'
// and '?', and only fragments longer than 20 characters after trimming are
// counted. Paragraphs are the blocks between "\n\n" separators, so a text
// without blank lines is one paragraph.
func Summarize(text string) types.DocumentSummary {
	words := len(strings.Fields(text))

	sentences := 0
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, f := range fragments {
		if utf8.RuneCountInString(strings.TrimSpace(f)) > minSentenceLen {
			sentences++
		}
	}

	return types.DocumentSummary{
		WordCount:         words,
		SentenceCount:     sentences,
		AvgSentenceLength: float64(words) / float64(max(sentences, 1)),
		ParagraphCount:    len(strings.Split(text, "\n\n")),
	}
}
