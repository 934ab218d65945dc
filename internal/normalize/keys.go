package normalize

import (
	"strings"
	"unicode/utf8"
)

// Value trims leading and trailing whitespace from a raw variable value.
// Only values actually found in a source are passed through here.
func Value(raw string) string {
	return strings.TrimSpace(raw)
}

// Fold prepares a string for symbol comparison.
// When caseSensitive is false the string is lowercased, otherwise it is returned unchanged.
// Examples:
//   - Fold("RED", true) → "RED"
//   - Fold("RED", false) → "red"
func Fold(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// Length returns the character count of s (runes, not bytes).
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// JoinPath combines a parent path with a key to create a nested lookup key.
// If parent is empty, returns the key unchanged.
// Otherwise, returns "parent.key".
// Examples:
//   - JoinPath("database", "host") → "database.host"
//   - JoinPath("", "host") → "host"
//   - JoinPath("api", "rate_limit") → "api.rate_limit"
func JoinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	if key == "" {
		return parent
	}
	return parent + "." + key
}
