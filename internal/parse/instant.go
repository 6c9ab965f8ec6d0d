package parse

import (
	"fmt"
	"time"
)

// Instant parses a matched timestamp such as 2024-01-01T00:00:00.123+02:00.
// Lexically valid input can still fail here, e.g. hour 25 or February 30.
func Instant(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return t, nil
}
