package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/daymood/internal/constants"
	"github.com/julianstephens/daymood/internal/models"
)

// Clock supplies the current time. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// DayKeyFor normalizes t to its calendar date in loc. A nil loc means time.Local.
func DayKeyFor(t time.Time, loc *time.Location) models.DayKey {
	if loc == nil {
		loc = time.Local
	}
	return models.DayKey(t.In(loc).Format(constants.DateFormat))
}

// Today returns the current DayKey for clock in loc.
func Today(clock Clock, loc *time.Location) models.DayKey {
	if clock == nil {
		clock = SystemClock{}
	}
	return DayKeyFor(clock.Now(), loc)
}

// ResolveDay returns today when date is empty, otherwise the parsed date.
func ResolveDay(date string, clock Clock, loc *time.Location) (models.DayKey, error) {
	if date == "" {
		return Today(clock, loc), nil
	}
	return models.ParseDayKey(date)
}

// DayRange lists every day from..to inclusive. from must not be after to.
func DayRange(from, to models.DayKey) ([]models.DayKey, error) {
	start, err := time.Parse(constants.DateFormat, from.String())
	if err != nil {
		return nil, fmt.Errorf("invalid start day %q: %w", from, err)
	}
	end, err := time.Parse(constants.DateFormat, to.String())
	if err != nil {
		return nil, fmt.Errorf("invalid end day %q: %w", to, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("start day %s is after end day %s", from, to)
	}

	n := int(end.Sub(start).Hours()/24) + 1
	if n > constants.MaxTrendDays {
		return nil, fmt.Errorf("range of %d days exceeds maximum of %d", n, constants.MaxTrendDays)
	}

	days := make([]models.DayKey, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, models.DayKey(d.Format(constants.DateFormat)))
	}
	return days, nil
}

// LastNDays returns the n days ending on (and including) end.
func LastNDays(end models.DayKey, n int) ([]models.DayKey, error) {
	if n < 1 {
		return nil, fmt.Errorf("day count must be at least 1, got %d", n)
	}
	start, err := end.AddDays(-(n - 1))
	if err != nil {
		return nil, err
	}
	return DayRange(start, end)
}
