package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a calendar date or an ISO-8601 timestamp.
// Values without a zone are interpreted as UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t.UTC(), nil
}

// IsDate reports whether value can be parsed by ParseDate.
func IsDate(value string) bool {
	_, err := ParseDate(value)
	return err == nil
}
