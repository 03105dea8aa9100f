// Package xregexp provides helpers to process regexp expressions.
package xregexp

import "regexp"

// SubmatchCaptures finds the leftmost match of re in s and returns its named
// groups by name and its unnamed groups in order. Both are nil when s does
// not match.
func SubmatchCaptures(re *regexp.Regexp, s string) (named map[string]string, unnamed []string) {
	matches := re.FindStringSubmatch(s)
	if len(matches) == 0 {
		return nil, nil
	}
	for i, name := range re.SubexpNames() {
		if i == 0 {
			continue
		}
		if name == "" {
			unnamed = append(unnamed, matches[i])
			continue
		}
		if named == nil {
			named = make(map[string]string)
		}
		named[name] = matches[i]
	}
	return named, unnamed
}
