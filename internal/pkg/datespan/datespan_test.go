package datespan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayIndex(t *testing.T) {
	wd, ok := WeekdayIndex("Sunday")
	assert.True(t, ok)
	assert.Equal(t, time.Sunday, wd)

	wd, ok = WeekdayIndex("Saturday")
	assert.True(t, ok)
	assert.Equal(t, time.Saturday, wd)

	_, ok = WeekdayIndex("Someday")
	assert.False(t, ok)

	// labels are case-sensitive
	_, ok = WeekdayIndex("monday")
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-04")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "Tuesday", WeekdayLabel(d))

	_, err = ParseDate("03/04/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)

	m, err = ParseClock("17:30")
	assert.NoError(t, err)
	assert.Equal(t, 17*60+30, m)

	m, err = ParseClock("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 23*60+59, m)

	_, err = ParseClock("5:00pm")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "17:30", FormatClock(17*60+30))
	assert.Equal(t, "09:05", FormatClock(9*60+5))
}

func TestDays(t *testing.T) {
	start := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)

	days := Days(start, end)
	assert.Len(t, days, 3)
	assert.Equal(t, start, days[0])
	assert.Equal(t, end, days[2])

	// single-day span
	assert.Len(t, Days(start, start), 1)

	// inverted span yields nothing
	assert.Nil(t, Days(end, start))
}

func TestDaysAcrossMonthBoundary(t *testing.T) {
	// leap year february
	start := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	days := Days(start, end)
	assert.Len(t, days, 3)
	assert.Equal(t, "2024-02-29", days[1].Format(DateLayout))
}

func TestAt(t *testing.T) {
	d := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 4, 17, 30, 0, 0, time.UTC), At(d, 17*60+30))
}
