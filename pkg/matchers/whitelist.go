package matchers

// CheckWhitelistBlacklist reports whether value is admitted by the supplied
// whitelist and blacklist pattern sets. Patterns are evaluated with Matches,
// so each may be an exact string, a glob, or a regular expression.
//
// Policy:
//   - a value matching any blacklist pattern is denied, regardless of the
//     whitelist
//   - with a non-empty whitelist, the value must match one of its patterns
//   - with no whitelist, anything the blacklist did not deny is admitted
//
// A nil or empty slice means the corresponding list is absent.
func CheckWhitelistBlacklist(value string, whitelist, blacklist []string) bool {
	if MatchAny(value, blacklist) {
		return false
	}

	if len(whitelist) == 0 {
		return true
	}

	return MatchAny(value, whitelist)
}
