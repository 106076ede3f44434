package hashtag

import (
	"iter"
	"unicode"
)

// Match is a hashtag found in the input.
type Match struct {
	// Text is the tag body without the leading '#'.
	Text string `json:"text" yaml:"text"`
	// Start is the byte offset of the '#'.
	Start int `json:"start" yaml:"start"`
	// End is the byte offset just past the last byte of Text.
	End int `json:"end" yaml:"end"`
}

// String returns the hashtag with its leading '#'.
func (m Match) String() string {
	return "#" + m.Text
}

// All returns the hashtags of s, left to right.
//
// The sequence is lazy; breaking out of the range loop stops the scan.
func All(s string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		sc := NewScanner(s)
		for {
			m, ok := sc.Next()
			if !ok || !yield(m) {
				return
			}
		}
	}
}

// Parse returns every hashtag of s in order. It returns nil if there is none.
func Parse(s string) []Match {
	var out []Match
	for m := range All(s) {
		out = append(out, m)
	}
	return out
}

// Count returns the number of hashtags in s without collecting them.
func Count(s string) int {
	n := 0
	sc := NewScanner(s)
	for {
		if _, ok := sc.Next(); !ok {
			return n
		}
		n++
	}
}

// IsTagRune reports whether r may appear in a hashtag body.
func IsTagRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsWordRune reports whether r glues a following '#' to the preceding token.
// Word runes and tag runes are the same class.
func IsWordRune(r rune) bool {
	return IsTagRune(r)
}
