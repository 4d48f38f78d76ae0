// Package clock tracks in-world time.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerRound  = 6
)

// ErrOutOfRange is returned when arithmetic would move time before day 0.
var ErrOutOfRange = errors.New("time out of range")

// Time is a point in the campaign, counted in seconds from the start of day 0.
type Time struct {
	seconds int64
}

// New returns the given day and time of day.
func New(day, hour, minute, second int) Time {
	return Time{seconds: int64(day)*secondsPerDay + int64(hour)*secondsPerHour +
		int64(minute)*secondsPerMinute + int64(second)}
}

// Default is the morning of the first day.
func Default() Time {
	return New(1, 8, 0, 0)
}

func (t Time) Day() int    { return int(t.seconds / secondsPerDay) }
func (t Time) Hour() int   { return int(t.seconds % secondsPerDay / secondsPerHour) }
func (t Time) Minute() int { return int(t.seconds % secondsPerHour / secondsPerMinute) }
func (t Time) Second() int { return int(t.seconds % secondsPerMinute) }

func (t Time) Add(i Interval) (Time, error) {
	next := t.seconds + i.TotalSeconds()
	if next < 0 {
		return t, ErrOutOfRange
	}
	return Time{seconds: next}, nil
}

func (t Time) Sub(i Interval) (Time, error) {
	next := t.seconds - i.TotalSeconds()
	if next < 0 {
		return t, ErrOutOfRange
	}
	return Time{seconds: next}, nil
}

// Short renders the time as "day:hh:mm:ss", the form used for persistence.
func (t Time) Short() string {
	return fmt.Sprintf("%d:%02d:%02d:%02d", t.Day(), t.Hour(), t.Minute(), t.Second())
}

// Long renders the time for people, eg. "day 1 at 8:00:00 am".
func (t Time) Long() string {
	hour, suffix := t.Hour(), "am"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "pm"
	case hour > 12:
		hour -= 12
		suffix = "pm"
	}
	return fmt.Sprintf("day %d at %d:%02d:%02d %s", t.Day(), hour, t.Minute(), t.Second(), suffix)
}

func (t Time) String() string { return t.Short() }

// ParseShort parses the output of Short.
func ParseShort(s string) (Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 4 {
		return Time{}, fmt.Errorf("parsing time %q: expected day:hh:mm:ss", s)
	}

	var values [4]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 {
			return Time{}, fmt.Errorf("parsing time %q: invalid component %q", s, part)
		}
		values[i] = v
	}
	if values[1] > 23 || values[2] > 59 || values[3] > 59 {
		return Time{}, fmt.Errorf("parsing time %q: component out of range", s)
	}
	return New(values[0], values[1], values[2], values[3]), nil
}
