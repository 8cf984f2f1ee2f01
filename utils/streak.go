package utils

import "time"

// IntakeEvent is one logged drink, reduced to what streak math needs.
type IntakeEvent struct {
	AmountML int
	LoggedAt time.Time
}

// StreakLookbackDays caps how far back the streak scan walks. Callers
// fetching logs for CurrentStreak should restrict to this many days.
const StreakLookbackDays = 90

// CurrentStreak counts consecutive civil days, walking backward from
// today in tz, whose logged total meets goalML.
//
// Today is special: a total below goal does not break the streak while
// the day is still in progress — it is skipped, uncounted, and the scan
// moves on to yesterday. Every earlier day below goal ends the scan.
// now anchors "today" and makes the function testable.
func CurrentStreak(events []IntakeEvent, goalML int, tz string, now time.Time) int {
	if goalML <= 0 {
		return 0
	}

	totals := make(map[string]int, len(events))
	for _, ev := range events {
		totals[LocalDayKey(ev.LoggedAt, tz)] += ev.AmountML
	}

	y, m, d := now.In(LoadLocationOrUTC(tz)).Date()

	streak := 0
	for i := 0; i < StreakLookbackDays; i++ {
		key := time.Date(y, m, d-i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if totals[key] >= goalML {
			streak++
			continue
		}
		if i == 0 {
			continue // today isn't over yet
		}
		break
	}
	return streak
}
