package pipeline

import "testing"

func TestDailyThresholdFloor(t *testing.T) {
	now := mustTime(t, "2025-08-15") // 31-day month
	// 500 * 0.05 / 31 ≈ 0.81, well under the floor.
	if got := DailyThreshold(500, now); got != 50 {
		t.Fatalf("DailyThreshold(500) = %v, want floor 50", got)
	}
	// 62000 * 0.05 / 31 = 100, above the floor.
	if got := DailyThreshold(62000, now); got != 100 {
		t.Fatalf("DailyThreshold(62000) = %v, want 100", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2025-08-15", 31},
		{"2025-04-01", 30},
		{"2025-02-10", 28},
		{"2024-02-10", 29}, // leap year
	}
	for _, tc := range cases {
		if got := DaysInMonth(mustTime(t, tc.date)); got != tc.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestStreakEmptyLedgerHitsCap(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	if got := Streak(map[string]float64{}, 500, now); got != 365 {
		t.Fatalf("Streak(empty) = %d, want 365", got)
	}
}

func TestStreakZeroWhenTodayOverThreshold(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	perDay := map[string]float64{"2025-08-15": 1000}
	if got := Streak(perDay, 500, now); got != 0 {
		t.Fatalf("Streak = %d, want 0 when today exceeds threshold", got)
	}
}

func TestStreakStopsAtFirstViolation(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	// Threshold floors at 50. Cheap today and yesterday, expensive two
	// days back; the backward scan must stop there even though earlier
	// days were cheap again.
	perDay := map[string]float64{
		"2025-08-15": 10,
		"2025-08-14": 50, // exactly at threshold still counts
		"2025-08-13": 60,
		"2025-08-12": 0,
	}
	if got := Streak(perDay, 500, now); got != 2 {
		t.Fatalf("Streak = %d, want 2", got)
	}
}

func TestStreakCountsQuietWindow(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	// Ten spend-free days then an overspend.
	perDay := map[string]float64{
		now.AddDate(0, 0, -10).Format("2006-01-02"): 500,
	}
	if got := Streak(perDay, 500, now); got != 10 {
		t.Fatalf("Streak = %d, want 10", got)
	}
}

func TestStreakCrossesMonthBoundary(t *testing.T) {
	now := mustTime(t, "2025-08-02")
	perDay := map[string]float64{"2025-07-30": 200}
	if got := Streak(perDay, 500, now); got != 3 {
		t.Fatalf("Streak = %d, want 3 (Aug 2, Aug 1, Jul 31)", got)
	}
}
