// Package dateutil computes the YYYY-MM-DD day and week-start keys used to
// partition day- and week-scoped records. Keys are derived from the local
// clock and compare lexicographically in date order.
package dateutil

import (
	"fmt"
	"time"

	"github.com/Donne-shi/daily-planner/internal/constants"
)

// Today returns the current local calendar date as YYYY-MM-DD.
func Today() string {
	return FormatDay(time.Now())
}

// FormatDay formats a time as a YYYY-MM-DD day key.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a YYYY-MM-DD day key.
func ParseDay(day string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, day, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", day, err)
	}
	return t, nil
}

// WeekStartOf returns the day key of the Monday on or before t.
// Weeks run Monday through Sunday, so a Sunday maps six days back.
func WeekStartOf(t time.Time) string {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return FormatDay(t.AddDate(0, 0, -(weekday - 1)))
}

// WeekStart returns the day key of the Monday on or before day.
func WeekStart(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return WeekStartOf(t), nil
}

// CurrentWeekStart returns the Monday key of the current local week.
func CurrentWeekStart() string {
	return WeekStartOf(time.Now())
}

// AddDays returns the day key n days after day (n may be negative).
func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return FormatDay(t.AddDate(0, 0, n)), nil
}
