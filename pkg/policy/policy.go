// Package policy holds named admission policies: whitelist/blacklist sets
// for value admission and include/exclude patterns for path filtering.
// Policies are the boundary where loosely typed configuration input enters
// the system; coercion is lenient and never fails the caller.
package policy

import (
	"github.com/arthur-debert/admit/pkg/matchers"
)

// Policy is a named set of admission rules.
type Policy struct {
	// Name identifies the policy in configuration and logs.
	Name string

	// Whitelist and Blacklist are pattern sets for value admission.
	// Each pattern may be an exact string, a glob, or a regex.
	Whitelist []string
	Blacklist []string

	// Include and Exclude are single patterns for path filtering,
	// glob by default or regex with the E@ prefix. Empty means absent.
	Include string
	Exclude string
}

// Admit reports whether value passes the policy's whitelist/blacklist.
// Blacklist denial wins; an absent whitelist admits by default.
func (p *Policy) Admit(value string) bool {
	return matchers.CheckWhitelistBlacklist(value, p.Whitelist, p.Blacklist)
}

// AdmitPath reports whether path passes the policy's include/exclude
// filter.
func (p *Policy) AdmitPath(path string) bool {
	return matchers.CheckIncludeExclude(path, p.Include, p.Exclude)
}

// FromMap builds a policy from a decoded configuration section. Malformed
// fields are logged and treated as absent, so a bad policy definition
// degrades to default-admit instead of failing the load.
func FromMap(name string, raw map[string]interface{}) *Policy {
	return &Policy{
		Name:      name,
		Whitelist: CoercePatternSet(name, "whitelist", raw["whitelist"]),
		Blacklist: CoercePatternSet(name, "blacklist", raw["blacklist"]),
		Include:   coercePattern(name, "include", raw["include"]),
		Exclude:   coercePattern(name, "exclude", raw["exclude"]),
	}
}
