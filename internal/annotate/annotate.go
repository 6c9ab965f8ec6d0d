package annotate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Zuo-Peng/elapsed/internal/parse"
	"github.com/Zuo-Peng/elapsed/internal/scan"
	"github.com/Zuo-Peng/elapsed/internal/surface"
)

const (
	msPerHour   = 3600000
	msPerMinute = 60000
	msPerSecond = 1000
)

// FuturePolicy decides how timestamps later than now are displayed.
type FuturePolicy string

const (
	// FutureSigned shows the distance with a leading minus, e.g. " (-1m 30s)".
	FutureSigned FuturePolicy = "signed"
	// FutureClamp shows future timestamps as " (0s)".
	FutureClamp FuturePolicy = "clamp"
)

// ParseFuturePolicy validates a config value; empty means FutureSigned.
func ParseFuturePolicy(s string) (FuturePolicy, error) {
	switch FuturePolicy(strings.ToLower(s)) {
	case "", FutureSigned:
		return FutureSigned, nil
	case FutureClamp:
		return FutureClamp, nil
	default:
		return FutureSigned, fmt.Errorf("invalid future policy %q (want signed or clamp)", s)
	}
}

// Annotation is the elapsed-time text for one match, anchored at the end of
// the line holding the match's end offset.
type Annotation struct {
	Match   scan.Match
	Line    int
	From    surface.Position // end of the timestamp
	Anchor  surface.Position // end of the line
	Text    string
	Elapsed int64 // milliseconds, now minus the timestamp
	Valid   bool  // false when Raw did not parse as an instant
}

// Options tune formatting. The zero value uses FutureSigned.
type Options struct {
	Future FuturePolicy
}

// Annotate produces exactly one annotation per match, in match order.
func Annotate(matches []scan.Match, s surface.Surface, now time.Time, opts Options) []Annotation {
	out := make([]Annotation, 0, len(matches))
	for _, m := range matches {
		from := s.PositionAt(m.End)
		a := Annotation{
			Match:  m,
			Line:   from.Line,
			From:   from,
			Anchor: s.LineEnd(from.Line),
		}

		ts, err := parse.Instant(m.Raw)
		if err != nil {
			a.Text = Degraded
		} else {
			a.Valid = true
			// time.Time.Sub saturates near ±292 years; millisecond epochs do not
			a.Elapsed = now.UnixMilli() - ts.UnixMilli()
			a.Text = Format(a.Elapsed, opts.Future)
		}
		out = append(out, a)
	}
	return out
}

// Degraded is the text shown for a timestamp that is not a real instant. A NaN
// elapsed value fails the hour and minute checks, leaving only the seconds slot.
const Degraded = " (NaNs)"

// Format renders elapsed milliseconds as " (1h 2m 3s)". Zero hours and minutes
// are omitted; seconds are always shown.
func Format(elapsedMs int64, future FuturePolicy) string {
	sign := ""
	if elapsedMs < 0 {
		if future == FutureClamp {
			elapsedMs = 0
		} else {
			sign = "-"
			elapsedMs = -elapsedMs
		}
	}
	if elapsedMs < msPerSecond {
		sign = ""
	}

	hours := elapsedMs / msPerHour
	minutes := (elapsedMs % msPerHour) / msPerMinute
	seconds := (elapsedMs % msPerMinute) / msPerSecond

	var b strings.Builder
	b.WriteString(" (")
	b.WriteString(sign)
	if hours > 0 {
		b.WriteString(strconv.FormatInt(hours, 10))
		b.WriteString("h ")
	}
	if minutes > 0 {
		b.WriteString(strconv.FormatInt(minutes, 10))
		b.WriteString("m ")
	}
	b.WriteString(strconv.FormatInt(seconds, 10))
	b.WriteString("s)")
	return b.String()
}
