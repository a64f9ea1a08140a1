package helpers

import (
	"strconv"
	"strings"
)

// IntOrNull parses s as an integer, returning nil when the value cannot be
// parsed. Zero and "absent" are distinct: "0" yields a valid zero pointer,
// an empty or malformed string yields nil.
func IntOrNull(s string) *int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &v
}

// StringOrNull returns nil for a blank string, otherwise a pointer to the
// trimmed value.
func StringOrNull(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// IntValue dereferences p, treating nil as 0.
func IntValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
