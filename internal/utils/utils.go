package utils

import "strings"

// IsBlank reports whether a request field counts as missing: absent, empty,
// or whitespace-only after trimming.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
