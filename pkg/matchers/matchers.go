package matchers

import (
	"regexp"

	"github.com/gobwas/glob"
)

// matchStrategy is one stage of the pattern evaluation chain.
type matchStrategy func(candidate, pattern string) bool

// strategies are tried in order, short-circuiting on the first hit.
var strategies = []matchStrategy{
	matchExact,
	matchGlob,
	matchAnchoredRegex,
}

// Matches evaluates a candidate against a single pattern. The pattern is
// tried first as an exact string, then as a full-string shell glob
// (*, ?, [seq]; case-sensitive, * crosses path separators), and finally as
// a regular expression anchored at both ends. A pattern that fails to
// compile at a given stage is a non-match for that stage, not an error.
func Matches(candidate, pattern string) bool {
	for _, strategy := range strategies {
		if strategy(candidate, pattern) {
			return true
		}
	}
	return false
}

// MatchAny reports whether candidate matches any pattern in the set.
// Order within the set does not affect the outcome, only how early the
// evaluation short-circuits.
func MatchAny(candidate string, patterns []string) bool {
	for _, pattern := range patterns {
		if Matches(candidate, pattern) {
			return true
		}
	}
	return false
}

func matchExact(candidate, pattern string) bool {
	return candidate == pattern
}

func matchGlob(candidate, pattern string) bool {
	g, err := glob.Compile(pattern)
	if err != nil {
		return false
	}
	return g.Match(candidate)
}

// matchAnchoredRegex wraps the pattern in a non-capturing group before
// anchoring so alternations anchor as a whole.
func matchAnchoredRegex(candidate, pattern string) bool {
	re, err := regexp.Compile(`\A(?:` + pattern + `)\z`)
	if err != nil {
		return false
	}
	return re.MatchString(candidate)
}
