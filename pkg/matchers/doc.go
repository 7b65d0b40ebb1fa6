// Package matchers implements pattern matching for admission decisions.
//
// Two matching schemes live here and they are intentionally different:
//
//   - Matches and the whitelist/blacklist evaluator try an ordered chain of
//     strategies per pattern: exact equality, then a full-string shell glob,
//     then the pattern promoted to a fully anchored regular expression.
//   - CheckIncludeExclude selects the mode purely from the pattern surface:
//     an "E@" prefix means unanchored regex substring search, anything else
//     is a full-string glob with no regex fallback.
//
// The asymmetry is deliberate and documented behavior; callers relying on
// regex metacharacters in include/exclude patterns must use the E@ prefix.
//
// All functions are pure and safe for concurrent use.
package matchers
