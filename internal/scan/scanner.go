package scan

import (
	"regexp"
	"strings"
)

// Match is one timestamp occurrence. Start and End are byte offsets into the
// scanned text, End exclusive.
type Match struct {
	Start int
	End   int
	Raw   string
}

// timestampRe matches YYYY-MM-DDThh:mm:ss with optional fractional seconds and
// a mandatory zone (Z or ±hh:mm). Values are not range checked here.
var timestampRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:\d{2})`)

// Scan returns every timestamp in text, left to right and non-overlapping.
func Scan(text string) []Match {
	return scanFrom(text, 0)
}

// ScanLines scans only lines first..last (0-based, inclusive) of text.
// Offsets in the returned matches still refer to the full text.
func ScanLines(text string, first, last int) []Match {
	if first < 0 {
		first = 0
	}
	if last < first {
		return nil
	}

	start, end := -1, len(text)
	line := 0
	if first == 0 {
		start = 0
	}
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		line++
		if line == first {
			start = i + 1
		}
		if line == last+1 {
			end = i
			break
		}
	}
	if start < 0 || start > end {
		return nil
	}
	return scanFrom(text[start:end], start)
}

func scanFrom(text string, base int) []Match {
	// cheap reject: every match contains a 'T' separator
	if !strings.ContainsRune(text, 'T') {
		return nil
	}

	locs := timestampRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Start: base + loc[0],
			End:   base + loc[1],
			Raw:   text[loc[0]:loc[1]],
		})
	}
	return matches
}
