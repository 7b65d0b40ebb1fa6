package matchers

import (
	"regexp"
	"strings"
)

// BuildWhitespaceSplitRegex builds a multiline, anchored regular expression
// that matches text equivalent to the input up to differences in
// whitespace. Each line is split into whitespace-separated tokens, every
// token is quoted literally, and tokens are joined with optional
// whitespace runs. Useful for locating a known line in a file whose
// indentation or spacing may have drifted.
func BuildWhitespaceSplitRegex(text string) string {
	var b strings.Builder
	b.WriteString(`(?m)^`)
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		parts := strings.Fields(line)
		for i, part := range parts {
			parts[i] = regexp.QuoteMeta(part)
		}
		b.WriteString(`(?:[\s]+)?`)
		b.WriteString(strings.Join(parts, `(?:[\s]+)?`))
		b.WriteString(`(?:[\s]+)?`)
	}
	b.WriteString(`$`)
	return b.String()
}

// ContainsWhitespace reports whether s contains any whitespace character.
func ContainsWhitespace(s string) bool {
	return strings.ContainsAny(s, " \t\n\v\f\r")
}
