package logger

import (
	"log/slog"
	"strconv"
	"unicode/utf8"
)

// DefaultMaxTextLen is the default cap, in bytes, for scanned text in logs.
const DefaultMaxTextLen = 256

// textKeys are the attribute keys that may carry raw scanned text.
var textKeys = map[string]bool{
	"text":   true,
	"line":   true,
	"input":  true,
	"sample": true,
}

// truncateText shortens string attributes named in textKeys to at most
// maxLen bytes, cutting on a rune boundary. Groups are walked recursively.
func truncateText(a slog.Attr, maxLen int) slog.Attr {
	if maxLen < 0 {
		return a
	}

	switch a.Value.Kind() {
	case slog.KindString:
		if textKeys[a.Key] {
			if s := a.Value.String(); len(s) > maxLen {
				return slog.String(a.Key, Truncate(s, maxLen))
			}
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = truncateText(attr, maxLen)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}
	return a
}

// Truncate cuts s to at most maxLen bytes on a rune boundary and marks the
// cut with "...(N bytes)" where N is the original length.
func Truncate(s string, maxLen int) string {
	if maxLen < 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "...(" + strconv.Itoa(len(s)) + " bytes)"
}
