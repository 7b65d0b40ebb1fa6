package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		pattern   string
		want      bool
	}{
		{"exact match", "minion01", "minion01", true},
		{"exact match wins before glob interpretation", "web*", "web*", true},
		{"glob star", "minion01", "minion*", true},
		{"glob star no match", "minion01", "web*", false},
		{"glob question mark", "web1", "web?", true},
		{"glob question mark needs one char", "web", "web?", false},
		{"glob char range", "db03", "db0[1-5]", true},
		{"glob char range outside", "db07", "db0[1-5]", false},
		{"glob crosses path separator", "/etc/hosts", "/etc/*", true},
		{"glob is case sensitive", "Minion01", "minion*", false},
		{"regex fallback full match", "abc123", "[a-z]+[0-9]+", true},
		{"regex fallback rejects partial match", "xabc123y", "[a-z]+[0-9]+", false},
		{"regex alternation anchored as a whole", "db01", "web01|db01", true},
		{"regex alternation rejects partial", "xdb01", "web01|db01", false},
		{"invalid regex is a silent non-match", "value", "a(b", false},
		{"empty pattern matches empty candidate", "", "", true},
		{"empty pattern rejects non-empty candidate", "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.candidate, tt.pattern))
		})
	}
}

func TestMatchesReflexive(t *testing.T) {
	// Any value matches itself via the exact-equality stage, even when it
	// is not a valid glob or regex.
	for _, value := range []string{"minion01", "web*", "a(b", "[", "E@chroot", ""} {
		assert.True(t, Matches(value, value), "Matches(%q, %q)", value, value)
	}
}

func TestMatchAny(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		patterns  []string
		want      bool
	}{
		{"nil set", "web01", nil, false},
		{"empty set", "web01", []string{}, false},
		{"first pattern matches", "web01", []string{"web*", "db*"}, true},
		{"later pattern matches", "db01", []string{"web*", "db*"}, true},
		{"no pattern matches", "ldap01", []string{"web*", "db*"}, false},
		{"duplicates are harmless", "web01", []string{"web*", "web*"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchAny(tt.candidate, tt.patterns))
		})
	}
}
