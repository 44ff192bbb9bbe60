package insight

import (
	"strings"
	"testing"
	"time"

	"expenseai/internal/model"
)

func rec(title string, amount float64, category, date string) model.Record {
	return model.Record{Title: title, Amount: amount, Category: category, Date: date}
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

func TestShort(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{350, "350"},
		{49.5, "49.5"},
		{123.456, "123.46"},
		{999.99, "999.99"},
		{1000, "1.0k"},
		{1250, "1.2k"},
		{12345, "12.3k"},
	}
	for _, tc := range cases {
		if got := Short(tc.in); got != tc.want {
			t.Errorf("Short(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRoundTenth(t *testing.T) {
	if got := RoundTenth(12.34); got != 12.3 {
		t.Fatalf("RoundTenth(12.34) = %v, want 12.3", got)
	}
	if got := RoundTenth(12.35); got != 12.4 {
		t.Fatalf("RoundTenth(12.35) = %v, want 12.4", got)
	}
}

func TestIsFood(t *testing.T) {
	cases := []struct {
		category string
		want     bool
	}{
		{"Food", true},
		{"food", true},
		{"Fast Food", true},
		{"🍕 Food", true},
		{"🍕", true}, // legacy icon-only category
		{"Transport", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsFood(tc.category); got != tc.want {
			t.Errorf("IsFood(%q) = %v, want %v", tc.category, got, tc.want)
		}
	}
}

func TestGenerateOrderAndWeekendShare(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	records := []model.Record{
		rec("Brunch", 200, "Food", "2025-08-02"), // Saturday
		rec("Bus", 100, "Transport", "2025-08-04"),
		rec("Groceries", 100, "Food", "2025-07-11"),
	}

	insights := Generate(records, now)
	if len(insights) != 4 {
		t.Fatalf("Generate returned %d insights, want 4", len(insights))
	}
	if insights[0] != "You spent 67% of your 300 this month on weekends." {
		t.Fatalf("weekend insight = %q", insights[0])
	}
	if insights[1] != "Largest spend this month: Food (200)." {
		t.Fatalf("top-category insight = %q", insights[1])
	}
	if insights[2] != "Food expenses increased by 100% compared to last month." {
		t.Fatalf("food insight = %q", insights[2])
	}
	if insights[3] != "Total spending increased by 200% compared to last month." {
		t.Fatalf("overall insight = %q", insights[3])
	}
}

func TestGenerateEmptyLedger(t *testing.T) {
	insights := Generate(nil, mustTime(t, "2025-08-15"))
	if len(insights) != 2 {
		t.Fatalf("Generate returned %d insights, want 2 (food + overall only)", len(insights))
	}
	if insights[0] != "No food expenses recorded in the last two months." {
		t.Fatalf("food insight = %q", insights[0])
	}
	if insights[1] != "Not enough data to compare months." {
		t.Fatalf("overall insight = %q", insights[1])
	}
}

func TestFoodAppearedThisMonth(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	records := []model.Record{
		rec("Lunch", 1250, "Food", "2025-08-05"),
		rec("Bus", 100, "Transport", "2025-07-05"),
	}

	insights := Generate(records, now)
	want := "Food expenses appeared this month (1.2k) — keep an eye on recurring costs."
	found := false
	for _, s := range insights {
		if s == want {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing %q in %v", want, insights)
	}
}

func TestFoodDecreasedAndSame(t *testing.T) {
	now := mustTime(t, "2025-08-15")

	decreased := Generate([]model.Record{
		rec("Lunch", 50, "Food", "2025-08-05"),
		rec("Lunch", 200, "Food", "2025-07-05"),
	}, now)
	if decreased[2] != "Food expenses decreased by 75% compared to last month." {
		t.Fatalf("food insight = %q", decreased[2])
	}

	same := Generate([]model.Record{
		rec("Lunch", 200, "Food", "2025-08-05"),
		rec("Lunch", 200, "Food", "2025-07-05"),
	}, now)
	if same[2] != "Food expenses stayed about the same as last month." {
		t.Fatalf("food insight = %q", same[2])
	}
}

func TestOverallStartedTracking(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	insights := Generate([]model.Record{
		rec("Bus", 100, "Transport", "2025-08-05"),
	}, now)

	last := insights[len(insights)-1]
	if last != "You started tracking this month with total spend 100." {
		t.Fatalf("overall insight = %q", last)
	}
}

func TestOverallDecreased(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	insights := Generate([]model.Record{
		rec("Bus", 50, "Transport", "2025-08-05"),
		rec("Bus", 200, "Transport", "2025-07-05"),
	}, now)

	last := insights[len(insights)-1]
	if !strings.Contains(last, "decreased by 75%") {
		t.Fatalf("overall insight = %q, want decreased by 75%%", last)
	}
}

func TestTopCategoryTieStable(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	records := []model.Record{
		rec("Bus", 100, "Transport", "2025-08-04"),
		rec("Lunch", 100, "Food", "2025-08-05"),
	}

	// Run repeatedly: the tie must always break to the first-inserted
	// category, never depend on map iteration order.
	for i := 0; i < 20; i++ {
		insights := Generate(records, now)
		if insights[1] != "Largest spend this month: Transport (100)." {
			t.Fatalf("run %d: top-category insight = %q", i, insights[1])
		}
	}
}
