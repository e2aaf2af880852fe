// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match counts whole-word and whole-phrase keyword occurrences.
//
// Matching is case-insensitive and literal: a keyword is never interpreted
// as a pattern. A keyword edge that is a word character (letter, digit, or
// underscore) must sit on a word boundary in the text, so "class" does not
// match inside "classroom". An edge that is not a word character, such as
// the "=" in "n =", matches literally with no boundary requirement.
package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text is a document prepared for repeated keyword counting. The
// lowercased form is computed once and shared by every Count call.
// A Text is immutable and safe for concurrent use.
type Text struct {
	lower string
}

// NewText prepares s for counting.
func NewText(s string) Text {
	return Text{lower: strings.ToLower(s)}
}

// Count returns the number of non-overlapping occurrences of keyword in
// text. It returns 0 for empty text or an empty keyword.
func Count(text, keyword string) int {
	return NewText(text).Count(keyword)
}

// Count returns the number of non-overlapping occurrences of keyword,
// scanning left to right.
func (t Text) Count(keyword string) int {
	kw := strings.ToLower(keyword)
	s := t.lower
	if kw == "" || len(kw) > len(s) {
		return 0
	}

	first, _ := utf8.DecodeRuneInString(kw)
	last, _ := utf8.DecodeLastRuneInString(kw)
	needLead := isWordRune(first)
	needTrail := isWordRune(last)

	n := 0
	for i := 0; i <= len(s)-len(kw); {
		j := strings.Index(s[i:], kw)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(kw)
		if (!needLead || !wordBefore(s, start)) && (!needTrail || !wordAfter(s, end)) {
			n++
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		i = start + size
	}
	return n
}

// Terms counts every keyword and returns the total together with the
// keywords that matched at least once, in the order given. Repeated
// keywords are counted once.
func (t Text) Terms(keywords []string) (int, []string) {
	total := 0
	var matched []string
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		if n := t.Count(kw); n > 0 {
			total += n
			matched = append(matched, kw)
		}
	}
	return total, matched
}

func wordBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

func wordAfter(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
