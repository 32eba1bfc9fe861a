package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID parses a positive numeric path id.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

// ParseOptionalMonth returns 0 for an empty string, the month for 1..12,
// and an error otherwise.
func ParseOptionalMonth(s string) (int, error) {
	return parseOptionalInt(s, "month", 1, 12)
}

// ParseOptionalYear returns 0 for an empty string, the year for a 4-digit
// value, and an error otherwise.
func ParseOptionalYear(s string) (int, error) {
	return parseOptionalInt(s, "year", 1000, 9999)
}

func parseOptionalInt(s, field string, min, max int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", field, s)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("%s out of range, got %d", field, n)
	}
	return n, nil
}
