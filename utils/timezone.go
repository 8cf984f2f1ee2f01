package utils

import (
	"time"
)

// DayWindow is the UTC instant range covering one civil day in a timezone.
type DayWindow struct {
	Start time.Time // local 00:00:00.000 as a UTC instant
	End   time.Time // local 23:59:59.999 as a UTC instant
	Date  string    // civil date, yyyy-mm-dd
}

// MonthWindow covers a whole civil month in a timezone.
type MonthWindow struct {
	Start       time.Time
	End         time.Time
	Year        int
	Month       time.Month
	DaysInMonth int
	Label       string // e.g. "January 2026"
}

// LoadLocationOrUTC resolves an IANA timezone name. Empty or unknown
// names fall back to UTC so a bad profile value can never break reads.
func LoadLocationOrUTC(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// zoneOffsetAtNoon samples the zone's UTC offset at local noon of the
// given civil date. DST transitions happen around midnight in nearly
// every zone, so noon is unambiguous. The one sampled offset is applied
// to both boundaries: the window is always 86,399,999 ms wide, and on a
// transition day it deviates slightly from the wall-clock midnights.
// That is date-bucketing semantics, not exact wall-clock duration.
func zoneOffsetAtNoon(year int, month time.Month, day int, loc *time.Location) time.Duration {
	noon := time.Date(year, month, day, 12, 0, 0, 0, loc)
	_, off := noon.Zone()
	return time.Duration(off) * time.Second
}

// DayRange returns the UTC range [Start, End] of the civil day `offset`
// whole days away from today in tz (0 = today, negative = past).
func DayRange(tz string, offset int) DayWindow {
	return DayRangeAt(time.Now(), tz, offset)
}

// DayRangeAt is DayRange anchored on an explicit instant.
func DayRangeAt(now time.Time, tz string, offset int) DayWindow {
	loc := LoadLocationOrUTC(tz)
	y, m, d := now.In(loc).Date()

	// Shift by whole days on the Y-M-D components in UTC, never by
	// adding a duration to an instant, so DST cannot skew the date.
	civil := time.Date(y, m, d+offset, 0, 0, 0, 0, time.UTC)
	y, m, d = civil.Date()

	off := zoneOffsetAtNoon(y, m, d, loc)
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Add(-off)

	return DayWindow{
		Start: start,
		End:   start.Add(24*time.Hour - time.Millisecond),
		Date:  civil.Format("2006-01-02"),
	}
}

// MonthBounds returns the UTC range of the civil month `offset` months
// away from the current month in tz, with its length and display label.
func MonthBounds(tz string, offset int) MonthWindow {
	return MonthBoundsAt(time.Now(), tz, offset)
}

// MonthBoundsAt is MonthBounds anchored on an explicit instant.
func MonthBoundsAt(now time.Time, tz string, offset int) MonthWindow {
	loc := LoadLocationOrUTC(tz)
	y, m, _ := now.In(loc).Date()

	first := time.Date(y, time.Month(int(m)+offset), 1, 0, 0, 0, 0, time.UTC)
	y, m, _ = first.Date()
	// day 0 of the next month is the last day of this one
	days := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()

	start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).Add(-zoneOffsetAtNoon(y, m, 1, loc))
	lastStart := time.Date(y, m, days, 0, 0, 0, 0, time.UTC).Add(-zoneOffsetAtNoon(y, m, days, loc))

	return MonthWindow{
		Start:       start,
		End:         lastStart.Add(24*time.Hour - time.Millisecond),
		Year:        y,
		Month:       m,
		DaysInMonth: days,
		Label:       first.Format("January 2006"),
	}
}

// LocalDayKey buckets an instant into its civil date in tz.
func LocalDayKey(t time.Time, tz string) string {
	return t.In(LoadLocationOrUTC(tz)).Format("2006-01-02")
}
