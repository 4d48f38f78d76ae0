package clock

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Interval is a span of in-world time, eg. "1d2h" or "3r". A round is six
// seconds.
type Interval struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
	Rounds  int64
}

// TotalSeconds flattens the interval.
func (i Interval) TotalSeconds() int64 {
	return i.Days*secondsPerDay + i.Hours*secondsPerHour + i.Minutes*secondsPerMinute +
		i.Seconds + i.Rounds*secondsPerRound
}

func (i Interval) IsZero() bool { return i.TotalSeconds() == 0 }

// ParseInterval parses a run of <number><unit> pairs where unit is one of
// d, h, m, s or r. A bare "d" means one day.
func ParseInterval(s string) (Interval, error) {
	var (
		i      Interval
		digits strings.Builder
		units  int
	)

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
			continue
		}

		n := int64(1)
		if digits.Len() > 0 {
			v, err := strconv.ParseInt(digits.String(), 10, 64)
			if err != nil {
				return Interval{}, fmt.Errorf("parsing interval %q: %w", s, err)
			}
			n = v
			digits.Reset()
		}

		switch r {
		case 'd':
			i.Days += n
		case 'h':
			i.Hours += n
		case 'm':
			i.Minutes += n
		case 's':
			i.Seconds += n
		case 'r':
			i.Rounds += n
		default:
			return Interval{}, fmt.Errorf("parsing interval %q: unknown unit %q", s, r)
		}
		units++
	}

	if digits.Len() > 0 || units == 0 {
		return Interval{}, fmt.Errorf("parsing interval %q: missing unit", s)
	}
	return i, nil
}

// String renders the interval in compact form, eg. "1d2h".
func (i Interval) String() string {
	var b strings.Builder
	for _, part := range []struct {
		n    int64
		unit string
	}{{i.Days, "d"}, {i.Hours, "h"}, {i.Minutes, "m"}, {i.Seconds, "s"}, {i.Rounds, "r"}} {
		if part.n != 0 {
			fmt.Fprintf(&b, "%d%s", part.n, part.unit)
		}
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}

// Long renders the interval for people, eg. "1 day, 2 hours".
func (i Interval) Long() string {
	var parts []string
	for _, part := range []struct {
		n    int64
		unit string
	}{{i.Days, "day"}, {i.Hours, "hour"}, {i.Minutes, "minute"}, {i.Seconds, "second"}, {i.Rounds, "round"}} {
		switch part.n {
		case 0:
		case 1:
			parts = append(parts, "1 "+part.unit)
		default:
			parts = append(parts, fmt.Sprintf("%d %ss", part.n, part.unit))
		}
	}
	if len(parts) == 0 {
		return "no time"
	}
	return strings.Join(parts, ", ")
}
