package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"regexp"
	"strings"
)

// NormalizeDeclaration canonicalizes a raw name/value declaration pair
// before it enters the cascade.
//
// Names are always case insensitive, make all lowercase. Values are case
// insensitive in most cases. Adapt for 'specials':
//
//	id, class   - case sensitive identifier(s)
//	font-family - case sensitive name(s)
//	font        - shorthand in which the trailing font-family is case sensitive
//	URL-bearing - text inside url(…) is case sensitive
//
// Malformed input never raises an error: where a pattern does not match,
// the value passes through with the default treatment.
func NormalizeDeclaration(name, value string) (string, string) {
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)
	switch {
	case verbatimValues[name]:
		// value is case sensitive, keep as is
	case name == "font":
		value = normalizeFontValue(value)
	case urlValues[name]:
		value = normalizeURLValue(value)
	default:
		value = strings.ToLower(value)
	}
	return name, value
}

// verbatimValues are declarations whose value is left untouched.
var verbatimValues = map[string]bool{
	"id":          true,
	"class":       true,
	"font-family": true,
}

// urlValues are declarations which may carry a url(…) functional notation;
// the URL itself must keep its case.
var urlValues = map[string]bool{
	"clip-path":     true,
	"color-profile": true,
	"cursor":        true,
	"fill":          true,
	"filter":        true,
	"marker-start":  true,
	"marker-mid":    true,
	"marker-end":    true,
	"mask":          true,
	"stroke":        true,
}

// urlNotation matches a url(…) functional notation in its unquoted, single-
// and double-quoted forms, with backslash-escaped characters inside treated
// as literal. Capture group 1 is the URL text to be preserved.
var urlNotation = regexp.MustCompile(`(?is)url\(\s*("(?:\\.|[^"])*"|'(?:\\.|[^'])*'|(?:\\.|[^)])*?)\s*\)`)

// normalizeURLValue lowercases a declaration value except for text found
// inside url(…) notations.
func normalizeURLValue(value string) string {
	matches := urlNotation.FindAllStringSubmatchIndex(value, -1)
	if matches == nil {
		return strings.ToLower(value)
	}
	var b strings.Builder
	b.Grow(len(value))
	pos := 0
	for _, m := range matches {
		start, end := m[2], m[3] // group 1: the raw URL text
		b.WriteString(strings.ToLower(value[pos:start]))
		b.WriteString(value[start:end])
		pos = end
	}
	b.WriteString(strings.ToLower(value[pos:]))
	return b.String()
}

// fontPrefix matches the leading size/line-height/keyword tokens of a 'font'
// shorthand, up to and including the last token starting with a digit. The
// trailing font-family list is case sensitive and left untouched.
var fontPrefix = regexp.MustCompile(`^((\d[^\s,]*|\w[^\s,]*)(\s+|\s*,\s*))*\d[^\s,]*`)

// normalizeFontValue lowercases only the leading part of a font shorthand.
func normalizeFontValue(value string) string {
	return fontPrefix.ReplaceAllStringFunc(value, strings.ToLower)
}
