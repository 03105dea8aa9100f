package regexbuilder

import "regexp"

// SpecialChars lists the characters escaped by Escape.
const SpecialChars = `\.*+?|()[]{}^$`

// Escape returns s with every character of SpecialChars prefixed by a
// backslash. Each input character is visited once so escapes are never
// doubled.
func Escape(s string) string {
	return regexp.QuoteMeta(s)
}

// escape returns s unchanged when it is already a pattern, otherwise the
// escaped form of s.
func escape(s string, isPattern bool) string {
	if isPattern {
		return s
	}
	return Escape(s)
}
