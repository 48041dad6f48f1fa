// Package clock converts between the canonical 24-hour "HH:MM" form of a
// time of day and the 12-hour display triple used by the time picker, and
// steps that triple with wraparound.
package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/oops"
)

const errDomain = "clock"

// ErrMalformed is wrapped by every error returned for a canonical value that
// is not a valid "HH:MM" string.
var ErrMalformed = errors.New("malformed canonical time")

// Period is the half of the day a 12-hour time belongs to.
type Period int

const (
	AM Period = iota
	PM
)

func (p Period) String() string {
	switch p {
	case AM:
		return "AM"
	case PM:
		return "PM"
	default:
		return "Unknown"
	}
}

// Toggle returns the other period.
func (p Period) Toggle() Period {
	if p == PM {
		return AM
	}
	return PM
}

// Time is the 12-hour display form of a time of day.
// Hours is in 1..12 and Minutes in 0..59.
type Time struct {
	Hours   int
	Minutes int
	Period  Period
}

// Default is the value shown when no time is selected: 12:00 AM.
func Default() Time {
	return Time{Hours: 12, Minutes: 0, Period: AM}
}

// FromClock builds a display time from a 24-hour hour and a minute.
func FromClock(hour, minute int) Time {
	t := Time{Hours: hour % 12, Minutes: minute, Period: AM}
	if t.Hours == 0 {
		t.Hours = 12
	}
	if hour >= 12 {
		t.Period = PM
	}
	return t
}

// Clock returns the 24-hour hour and the minute of t.
func (t Time) Clock() (hour, minute int) {
	hour = t.Hours
	switch {
	case t.Period == PM && t.Hours != 12:
		hour = t.Hours + 12
	case t.Period == AM && t.Hours == 12:
		hour = 0
	}
	return hour, t.Minutes
}

// Valid reports whether every part of t is in range.
func (t Time) Valid() bool {
	return t.Hours >= 1 && t.Hours <= 12 &&
		t.Minutes >= 0 && t.Minutes <= 59 &&
		(t.Period == AM || t.Period == PM)
}

// String renders t as "HH:MM PERIOD".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d %s", t.Hours, t.Minutes, t.Period)
}

// Parse converts a canonical "HH:MM" value to its display form.
// An empty value yields Default. Malformed values yield Default and an
// error wrapping ErrMalformed.
func Parse(canonical string) (Time, error) {
	canonical = strings.TrimSpace(canonical)
	if canonical == "" {
		return Default(), nil
	}

	hh, mm, ok := strings.Cut(canonical, ":")
	if !ok {
		return Default(), malformed(canonical, "missing ':' separator")
	}
	hour, err := twoDigits(hh)
	if err != nil {
		return Default(), malformed(canonical, "hour is not a number")
	}
	minute, err := twoDigits(mm)
	if err != nil {
		return Default(), malformed(canonical, "minute is not a number")
	}
	if hour < 0 || hour > 23 {
		return Default(), malformed(canonical, "hour out of range")
	}
	if minute < 0 || minute > 59 {
		return Default(), malformed(canonical, "minute out of range")
	}

	return FromClock(hour, minute), nil
}

// twoDigits accepts one or two ASCII digits and nothing else.
func twoDigits(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, strconv.ErrSyntax
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(canonical string) Time {
	t, err := Parse(canonical)
	if err != nil {
		panic(err)
	}
	return t
}

// Format converts a display time to its canonical "HH:MM" value.
func Format(t Time) string {
	hour, minute := t.Clock()
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// DisplayString returns the placeholder when no value is set, otherwise t
// rendered as "HH:MM PERIOD".
func DisplayString(t Time, hasValue bool, placeholder string) string {
	if !hasValue {
		return placeholder
	}
	return t.String()
}

func malformed(value, reason string) error {
	return oops.
		In(errDomain).
		With("value", value).
		Wrapf(ErrMalformed, "%s in %q", reason, value)
}
