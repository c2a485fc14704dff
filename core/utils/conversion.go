package utils

import (
	"strconv"
	"strings"
)

// ToInt parses a query or form value as an int, returning def when it is empty or invalid.
func ToInt(val string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return def
	}
	return i
}

// ToBool parses a query or form value. "1", "true", "yes" and "on" are true.
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
