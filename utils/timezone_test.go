package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testZones = []string{
	"UTC",
	"America/New_York",
	"Europe/Berlin",
	"Asia/Tokyo",
	"Asia/Kathmandu", // +05:45, catches whole-hour assumptions
	"Australia/Sydney",
}

func TestDayRangeWindowWidth(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

	for _, tz := range testZones {
		for _, offset := range []int{-30, -1, 0, 1, 30} {
			w := DayRangeAt(now, tz, offset)
			assert.True(t, w.Start.Before(w.End), "%s offset %d", tz, offset)
			// one sampled offset for both boundaries: always 86,399,999 ms,
			// even on DST-transition days
			assert.Equal(t, 86399999*time.Millisecond, w.End.Sub(w.Start), "%s offset %d", tz, offset)
		}
	}
}

func TestDayRangeKnownInstants(t *testing.T) {
	// June: New York observes EDT (UTC-4)
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	w := DayRangeAt(now, "America/New_York", 0)
	assert.Equal(t, "2024-06-15", w.Date)
	assert.Equal(t, time.Date(2024, time.June, 15, 4, 0, 0, 0, time.UTC), w.Start)

	// January: EST (UTC-5)
	now = time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	w = DayRangeAt(now, "America/New_York", 0)
	assert.Equal(t, time.Date(2024, time.January, 15, 5, 0, 0, 0, time.UTC), w.Start)

	// Kathmandu is +05:45
	now = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	w = DayRangeAt(now, "Asia/Kathmandu", 0)
	assert.Equal(t, "2024-06-15", w.Date)
	assert.Equal(t, time.Date(2024, time.June, 14, 18, 15, 0, 0, time.UTC), w.Start)
}

func TestDayRangeLocalDateRollsOverBeforeUTC(t *testing.T) {
	// 20:00 UTC is already June 16 in Tokyo
	now := time.Date(2024, time.June, 15, 20, 0, 0, 0, time.UTC)
	w := DayRangeAt(now, "Asia/Tokyo", 0)
	assert.Equal(t, "2024-06-16", w.Date)
	assert.Equal(t, time.Date(2024, time.June, 15, 15, 0, 0, 0, time.UTC), w.Start)
}

func TestDayRangeOffsetCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	w := DayRangeAt(now, "UTC", -1)
	assert.Equal(t, "2024-02-29", w.Date) // leap year
}

func TestDayRangeUnknownZoneFallsBackToUTC(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	w := DayRangeAt(now, "Not/AZone", 0)
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestDayRangeTodayContainsNow(t *testing.T) {
	for _, tz := range testZones {
		w := DayRange(tz, 0)
		now := time.Now()
		assert.False(t, now.Before(w.Start), "now before start of today in %s", tz)
		assert.False(t, now.After(w.End), "now after end of today in %s", tz)
	}
}

func TestMonthBoundsCalendarShape(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	feb24 := MonthBoundsAt(now, "UTC", -1)
	assert.Equal(t, 29, feb24.DaysInMonth)
	assert.Equal(t, "February 2024", feb24.Label)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), feb24.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC), feb24.End)

	feb23 := MonthBoundsAt(time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC), "UTC", -1)
	assert.Equal(t, 28, feb23.DaysInMonth)
}

func TestMonthBoundsSpansDSTTransition(t *testing.T) {
	// March 2024 in New York starts in EST and ends in EDT; each
	// boundary uses its own day's offset.
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	m := MonthBoundsAt(now, "America/New_York", 0)

	require.Equal(t, 31, m.DaysInMonth)
	assert.Equal(t, time.Date(2024, time.March, 1, 5, 0, 0, 0, time.UTC), m.Start)  // EST
	assert.Equal(t, time.Date(2024, time.April, 1, 3, 59, 59, 999000000, time.UTC), m.End) // EDT
}

func TestMonthBoundsOffsetWrapsYear(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	jan25 := MonthBoundsAt(now, "UTC", 10)
	assert.Equal(t, "January 2025", jan25.Label)
	assert.Equal(t, 2025, jan25.Year)

	nov23 := MonthBoundsAt(now, "UTC", -4)
	assert.Equal(t, "November 2023", nov23.Label)
	assert.Equal(t, 30, nov23.DaysInMonth)
}

func TestLocalDayKey(t *testing.T) {
	instant := time.Date(2024, time.June, 15, 2, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-06-15", LocalDayKey(instant, "UTC"))
	assert.Equal(t, "2024-06-14", LocalDayKey(instant, "America/New_York")) // 22:00 EDT the day before
	assert.Equal(t, "2024-06-15", LocalDayKey(instant, "Asia/Tokyo"))
}
