// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

// DateLayout is the calendar date format used for session records.
const DateLayout = "2006-01-02"

const secondsInAMinute = 60

// Today returns the local calendar date of t as YYYY-MM-DD.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders whole seconds as mm:ss. Minutes are not capped at 59.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	return fmt.Sprintf("%02d:%02d", seconds/secondsInAMinute, seconds%secondsInAMinute)
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// AddDays shifts a YYYY-MM-DD date by n days. It returns an empty string
// for an invalid input.
func AddDays(date string, n int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}

	return t.AddDate(0, 0, n).Format(DateLayout)
}

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

// ParseDate converts user input such as "2024-05-01", "yesterday" or
// "2 weeks ago" into a YYYY-MM-DD date relative to now.
func ParseDate(s string, now time.Time) (string, error) {
	s = strings.TrimSpace(s)

	if ValidDate(s) {
		return s, nil
	}

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return "", err
	}

	return Today(dt.Time), nil
}
