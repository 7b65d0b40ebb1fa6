package policy

import (
	"github.com/arthur-debert/admit/pkg/logging"
)

// CoercePatternSet converts an untyped configuration value into a pattern
// set. A bare string becomes a one-element set, a list of strings passes
// through, nil yields an absent set. Anything else is malformed: it is
// logged at error level and treated as absent, never surfaced as an error.
// The field argument names the originating config key for the log entry.
func CoercePatternSet(policyName, field string, value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []interface{}:
		patterns := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				logNonIterable(policyName, field, value)
				return nil
			}
			patterns = append(patterns, s)
		}
		return patterns
	default:
		logNonIterable(policyName, field, value)
		return nil
	}
}

// coercePattern converts an untyped configuration value into a single
// filter pattern, with the same log-and-absent handling as
// CoercePatternSet.
func coercePattern(policyName, field string, value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		logNonIterable(policyName, field, value)
		return ""
	}
}

func logNonIterable(policyName, field string, value interface{}) {
	logger := logging.GetLogger("policy")
	logger.Error().
		Str("policy", policyName).
		Str("field", field).
		Interface("value", value).
		Msg("malformed pattern set, treating as absent")
}
