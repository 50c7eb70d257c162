package types

import "strings"

// NormalizeKey folds a natural-key field for comparison: leading and trailing
// whitespace is trimmed and the result is lowercased. Two values with the
// same normalized key are considered duplicates.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
