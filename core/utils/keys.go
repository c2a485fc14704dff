package utils

import (
	"strings"
)

// SanitizeSegment makes s safe for use as one segment of a cache key or object
// name: lowercased, trimmed, with path separators and control characters replaced.
func SanitizeSegment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, s)
}

// JoinKey joins sanitized segments with sep.
func JoinKey(sep string, segments ...string) string {
	clean := make([]string, len(segments))
	for i, s := range segments {
		clean[i] = SanitizeSegment(s)
	}
	return strings.Join(clean, sep)
}
