package sanitizer

import (
	"strings"
)

// IsValidPath reports whether s is usable as a directory path on every supported platform
// Empty strings and strings containing reserved characters are rejected
func IsValidPath(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !containsFiltered(s, FilterPathInvalid)
}

// IsValidName reports whether s is usable as a single file name
// Separators, the drive colon and the "." / ".." entries are rejected on top of the path rules
func IsValidName(s string) bool {
	if strings.TrimSpace(s) == "" || s == "." || s == ".." {
		return false
	}
	return !containsFiltered(s, FilterNameInvalid)
}

func containsFiltered(s string, filter uint64) bool {
	for _, r := range s {
		if matchesFilter(r, filter) {
			return true
		}
	}
	return false
}
