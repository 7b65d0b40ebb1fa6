package matchers

import (
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/arthur-debert/admit/pkg/logging"
)

// RegexMarker prefixes an include/exclude pattern to select unanchored
// regex substring matching instead of full-string glob matching.
const RegexMarker = "E@"

// CheckIncludeExclude reports whether candidate passes the include/exclude
// filter. Each pattern is a single pattern, not a set; the empty string
// means the pattern is absent.
//
//   - neither pattern supplied: true
//   - include only: true when the include pattern matches
//   - exclude only: true when the exclude pattern does not match
//   - both: include must match and exclude must not
//
// Unlike CheckWhitelistBlacklist there is no glob-to-regex fallback here:
// a pattern without the E@ marker is always a full-string glob, even when
// it contains regex metacharacters.
func CheckIncludeExclude(candidate, includePattern, excludePattern string) bool {
	switch {
	case includePattern != "" && excludePattern == "":
		return filterMatch(candidate, includePattern)
	case includePattern == "" && excludePattern != "":
		return !filterMatch(candidate, excludePattern)
	case includePattern != "" && excludePattern != "":
		return filterMatch(candidate, includePattern) && !filterMatch(candidate, excludePattern)
	default:
		return true
	}
}

// filterMatch applies the two-mode matcher for one filter pattern. Invalid
// patterns are logged and treated as non-matches so filtering never fails
// the caller.
func filterMatch(candidate, pattern string) bool {
	if strings.HasPrefix(pattern, RegexMarker) {
		re, err := regexp.Compile(pattern[len(RegexMarker):])
		if err != nil {
			logger := logging.GetLogger("matchers.filter")
			logger.Error().
				Err(err).
				Str("pattern", pattern).
				Msg("invalid regex in filter pattern")
			return false
		}
		return re.MatchString(candidate)
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		logger := logging.GetLogger("matchers.filter")
		logger.Error().
			Err(err).
			Str("pattern", pattern).
			Msg("invalid glob in filter pattern")
		return false
	}
	return g.Match(candidate)
}
