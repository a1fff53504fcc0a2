package utils

import (
	"fmt"
	"time"
)

// ParseExpiry parses a code expiry given as RFC3339, YYYY-MM-DD or a duration
// relative to now (e.g. "72h"). A bare date expires at the end of that day.
// An empty string means no expiry.
func ParseExpiry(value string, now time.Time) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		t = t.Add(24*time.Hour - time.Second)
		return &t, nil
	}

	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		t := now.Add(d)
		return &t, nil
	}

	return nil, fmt.Errorf("invalid expiry %q, expected RFC3339, YYYY-MM-DD or a positive duration", value)
}
