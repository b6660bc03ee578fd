// Package datespan holds the calendar arithmetic shared by the schedule
// engine: weekday labels, wire date/time layouts, and date range iteration.
package datespan

import (
	"time"

	"github.com/pkg/errors"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"

	// ClockLayout is the wire format for times of day. Zero-padded 24h,
	// so lexicographic order equals temporal order.
	ClockLayout = "15:04"
)

// WeekdayLabels maps time.Weekday ordinals (Sunday = 0) to their labels.
var WeekdayLabels = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var weekdayIndices = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, len(WeekdayLabels))
	for i, label := range WeekdayLabels {
		m[label] = time.Weekday(i)
	}
	return m
}()

// WeekdayIndex resolves a weekday label to its time.Weekday ordinal.
func WeekdayIndex(label string) (time.Weekday, bool) {
	wd, ok := weekdayIndices[label]
	return wd, ok
}

// WeekdayLabel returns the label of the given date's weekday.
func WeekdayLabel(date time.Time) string {
	return WeekdayLabels[int(date.Weekday())]
}

// ParseDate parses a DateLayout date. All dates are treated as civil dates
// anchored at UTC midnight; the engine never deals in instants.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return t, nil
}

// ParseClock parses a ClockLayout time of day into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight in ClockLayout. Minutes are
// expected to stay within a single day.
func FormatClock(minutes int) string {
	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(ClockLayout)
}

// Days returns every calendar date from start to end inclusive, ascending.
// Returns nil when end precedes start.
func Days(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// At combines a civil date with a minutes-since-midnight clock value into
// a single instant, the combined date-time form of an occurrence boundary.
func At(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
