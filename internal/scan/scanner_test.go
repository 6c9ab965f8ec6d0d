package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFindsTimestampVariants(t *testing.T) {
	text := "a 2024-01-01T00:00:00Z b 2024-06-30T12:34:56.789+02:00 c 2024-06-30T12:34:56-05:30"
	got := Scan(text)

	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-01T00:00:00Z", got[0].Raw)
	assert.Equal(t, "2024-06-30T12:34:56.789+02:00", got[1].Raw)
	assert.Equal(t, "2024-06-30T12:34:56-05:30", got[2].Raw)
	for _, m := range got {
		assert.Equal(t, m.Raw, text[m.Start:m.End])
	}
	assert.Less(t, got[0].End, got[1].Start)
	assert.Less(t, got[1].End, got[2].Start)
}

func TestScanRejectsIncompleteForms(t *testing.T) {
	for _, text := range []string{
		"2024-01-01",
		"2024-01-01T00:00:00",      // no zone
		"2024-01-01 00:00:00Z",     // space separator
		"2024-1-01T00:00:00Z",      // short month
		"2024-01-01T00:00Z",        // no seconds
		"2024-01-01T00:00:00+0200", // offset without colon
		"no timestamps here",
		"",
	} {
		assert.Empty(t, Scan(text), text)
	}
}

func TestScanIsLexicalOnly(t *testing.T) {
	got := Scan("2024-13-45T99:99:99Z")
	require.Len(t, got, 1)
	assert.Equal(t, "2024-13-45T99:99:99Z", got[0].Raw)
}

func TestScanFractionWithoutDigitsStopsAtSeconds(t *testing.T) {
	// "." must be followed by digits, and a zone is still required
	assert.Empty(t, Scan("2024-01-01T00:00:00.Z"))
}

func TestScanIsIdempotent(t *testing.T) {
	text := strings.Repeat("x 2024-01-01T00:00:00Z y\n", 50)
	first := Scan(text)
	second := Scan(text)
	assert.Equal(t, first, second)
	assert.Len(t, first, 50)
}

func TestScanLines(t *testing.T) {
	text := "2024-01-01T00:00:00Z\nplain\n2024-01-02T00:00:00Z x\n2024-01-03T00:00:00Z"

	got := ScanLines(text, 1, 2)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-02T00:00:00Z", got[0].Raw)
	assert.Equal(t, got[0].Raw, text[got[0].Start:got[0].End])

	assert.Equal(t, Scan(text), ScanLines(text, 0, 100))
	assert.Len(t, ScanLines(text, 3, 3), 1)
	assert.Empty(t, ScanLines(text, 5, 9))
	assert.Empty(t, ScanLines(text, 2, 1))
}
