package models

import (
	"fmt"
	"strings"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey is a local calendar date in YYYY-MM-DD form.
type DayKey string

// ParseDayKey validates s and returns it as a DayKey.
func ParseDayKey(s string) (DayKey, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(dayKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	// Reject non-canonical forms that time.Parse would still accept.
	if t.Format(dayKeyLayout) != s {
		return "", fmt.Errorf("invalid date: %s", s)
	}
	return DayKey(s), nil
}

func (d DayKey) String() string {
	return string(d)
}

// Time returns midnight of the day in loc.
func (d DayKey) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(dayKeyLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", d, err)
	}
	return t, nil
}

// AddDays shifts the calendar date, ignoring DST.
func (d DayKey) AddDays(n int) (DayKey, error) {
	t, err := time.Parse(dayKeyLayout, string(d))
	if err != nil {
		return "", fmt.Errorf("invalid day key %q: %w", d, err)
	}
	return DayKey(t.AddDate(0, 0, n).Format(dayKeyLayout)), nil
}
