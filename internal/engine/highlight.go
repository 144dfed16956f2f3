package engine

import (
	"strings"
	"unicode/utf8"
)

// Segments splits a display string around the searched token.
type Segments struct {
	Before string
	Match  string
	After  string
}

// String reassembles the segments.
func (s Segments) String() string {
	return s.Before + s.Match + s.After
}

// Highlight splits text at the first case-insensitive occurrence of token.
// The original casing of text is kept in every segment. An empty or absent
// token leaves the whole text in Before.
func Highlight(text, token string) Segments {
	if token == "" {
		return Segments{Before: text}
	}

	i, n := indexFold(text, token)
	if i < 0 {
		return Segments{Before: text}
	}
	return Segments{
		Before: text[:i],
		Match:  text[i : i+n],
		After:  text[i+n:],
	}
}

// indexFold returns the byte offset and byte length of the first
// case-insensitive occurrence of substr in s, or -1.
// Lowercasing can change byte lengths, so matching walks runes instead.
func indexFold(s, substr string) (int, int) {
	want := utf8.RuneCountInString(substr)
	for i := range s {
		j, count := i, 0
		for j < len(s) && count < want {
			_, size := utf8.DecodeRuneInString(s[j:])
			j += size
			count++
		}
		if count < want {
			break
		}
		if strings.EqualFold(s[i:j], substr) {
			return i, j - i
		}
	}
	return -1, 0
}
