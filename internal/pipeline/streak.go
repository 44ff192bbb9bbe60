package pipeline

import "time"

// streakLookbackDays caps the backward scan.
const streakLookbackDays = 365

// DailyThreshold is the spend ceiling a day must stay under to count
// toward the saving streak: 5% of the monthly budget spread over the days
// of the current month, with a fixed floor of 50.
func DailyThreshold(budget float64, now time.Time) float64 {
	days := DaysInMonth(now)
	thresh := budget * 0.05 / float64(days)
	if thresh < 50 {
		thresh = 50
	}
	return thresh
}

// DaysInMonth returns the number of days in now's calendar month.
func DaysInMonth(now time.Time) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
}

// Streak counts consecutive days ending today where spend stayed at or
// under the daily threshold, walking backward from now and stopping at the
// first day over it. Days with no recorded spend count as zero. The scan
// is capped at 365 days, so an empty ledger yields 365.
func Streak(perDay map[string]float64, budget float64, now time.Time) int {
	thresh := DailyThreshold(budget, now)

	streak := 0
	for i := 0; i < streakLookbackDays; i++ {
		key := now.AddDate(0, 0, -i).Format("2006-01-02")
		if perDay[key] > thresh {
			break
		}
		streak++
	}
	return streak
}
