package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstant(t *testing.T) {
	ts, err := Instant("2024-01-01T02:00:00.5+02:00")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 1, 1, 0, 0, 0, 500_000_000, time.UTC)))
}

func TestInstantRejectsImpossibleValues(t *testing.T) {
	for _, raw := range []string{
		"2024-13-01T00:00:00Z",
		"2024-02-30T00:00:00Z",
		"2024-01-01T25:00:00Z",
		"2024-01-01T00:61:00Z",
	} {
		_, err := Instant(raw)
		assert.Error(t, err, raw)
	}
}
