package hashtag

import (
	"unicode"
	"unicode/utf8"
)

// startOfInput is the previous rune before anything has been read.
const startOfInput rune = -1

// Scanner walks a string and yields its hashtags one at a time.
//
// The zero value scans the empty string. A Scanner is not safe for concurrent
// use; create one per goroutine.
type Scanner struct {
	src  string
	pos  int
	prev rune
}

// NewScanner returns a Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{src: s, prev: startOfInput}
}

// Reset repositions the scanner at the start of s.
func (sc *Scanner) Reset(s string) {
	sc.src = s
	sc.pos = 0
	sc.prev = startOfInput
}

// Offset returns the byte offset of the next unread byte.
func (sc *Scanner) Offset() int {
	return sc.pos
}

// Next returns the next hashtag. ok is false once the input is exhausted, and
// stays false on later calls.
func (sc *Scanner) Next() (m Match, ok bool) {
	for sc.pos < len(sc.src) {
		r, width := utf8.DecodeRuneInString(sc.src[sc.pos:])

		if r == '#' && canStartAfter(sc.prev) {
			bodyStart := sc.pos + width
			end, hasNonDigit := scanRun(sc.src, bodyStart)
			if end > bodyStart && hasNonDigit {
				m = Match{Text: sc.src[bodyStart:end], Start: sc.pos, End: end}
				sc.prev, _ = utf8.DecodeLastRuneInString(sc.src[bodyStart:end])
				sc.pos = end
				return m, true
			}
			// Rejected: only the '#' is consumed, the run is read again.
		}

		sc.prev = r
		sc.pos += width
	}
	return Match{}, false
}

// canStartAfter reports whether a '#' preceded by prev may open a hashtag.
func canStartAfter(prev rune) bool {
	if prev == startOfInput {
		return true
	}
	return prev != '#' && !IsWordRune(prev)
}

// scanRun returns the end of the run of tag runes starting at i and whether
// the run has a rune that is not a decimal digit.
func scanRun(s string, i int) (end int, hasNonDigit bool) {
	for i < len(s) {
		r, width := utf8.DecodeRuneInString(s[i:])
		if !IsTagRune(r) {
			break
		}
		if !unicode.IsDigit(r) {
			hasNonDigit = true
		}
		i += width
	}
	return i, hasNonDigit
}
