// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"regexp"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// Canonical layouts for stored dates and clock times.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	YearLayout  = "2006"
	ClockLayout = "15:04:05"
)

const (
	// StartOfDay and EndOfDay are the clock times that join the two halves
	// of a session crossing midnight.
	StartOfDay = "00:00:00"
	EndOfDay   = "23:59:59"
)

var clockRegex = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// DaysIn returns the number of days in the month for the specified time.
func DaysIn(t time.Time) int {
	m := t.Month()
	year := t.Year()

	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date formats t as a canonical date.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Clock formats t as a canonical clock time.
func Clock(t time.Time) string {
	return t.Format(ClockLayout)
}

// ParseDate strictly parses a YYYY-MM-DD date in the given location.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, ErrInvalidDate.Fmt(s)
	}

	return t, nil
}

// ValidateClock reports whether s is a valid HH:MM:SS clock time.
func ValidateClock(s string) error {
	if !clockRegex.MatchString(s) {
		return ErrInvalidClock.Fmt(s)
	}

	if _, err := time.Parse(ClockLayout, s); err != nil {
		return ErrInvalidClock.Fmt(s)
	}

	return nil
}

// Combine anchors a canonical clock time onto a canonical date.
func Combine(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(
		DateLayout+" "+ClockLayout,
		date+" "+clock,
		loc,
	)
	if err != nil {
		return time.Time{}, ErrInvalidDate.Fmt(fmt.Sprintf("%s %s", date, clock))
	}

	return t, nil
}

// SecondsBetween returns the number of whole seconds from start to end.
func SecondsBetween(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Second)
}

// FromStr parses a free-form date such as "2 weeks ago" or "March 3",
// relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate.Fmt(s)
	}

	return dt.Time, nil
}
