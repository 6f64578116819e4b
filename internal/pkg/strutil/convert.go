// Package strutil provides small string conversion helpers for query
// parameter handling.
package strutil

import "strconv"

// ConvertToInt parses s as a base-10 int, returning 0 on failure.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

// ConvertToUint parses s as a base-10 uint, returning 0 on failure.
func ConvertToUint(s string) uint {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
