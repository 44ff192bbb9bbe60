package pipeline

import (
	"math"
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

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStats(t *testing.T) {
	records := []model.Record{
		rec("Lunch", 200, "Food", "2025-08-15"),
		rec("Bus", 100, "Transport", "2025-08-15"),
		rec("Groceries", 50, "Food", "2025-07-11"),
	}
	settings := model.Settings{Budget: 500, Currency: model.CurrencyINR}

	stats := Stats(records, settings)
	if !approxEqual(stats.Total, 350) {
		t.Fatalf("Total = %v, want 350", stats.Total)
	}
	if !approxEqual(stats.Remaining, 150) {
		t.Fatalf("Remaining = %v, want 150", stats.Remaining)
	}
	if stats.OverBudget {
		t.Fatal("OverBudget = true for spend under budget")
	}
}

func TestStatsOverBudget(t *testing.T) {
	records := []model.Record{rec("TV", 1000, "Shopping", "2025-08-15")}
	settings := model.Settings{Budget: 500}

	stats := Stats(records, settings)
	if !approxEqual(stats.Remaining, -500) {
		t.Fatalf("Remaining = %v, want -500", stats.Remaining)
	}
	if !stats.OverBudget {
		t.Fatal("OverBudget = false, want true for negative remaining")
	}
}

func TestStatsEmptyLedger(t *testing.T) {
	stats := Stats(nil, model.Settings{Budget: 500})
	if !approxEqual(stats.Remaining, 500) {
		t.Fatalf("Remaining = %v, want 500", stats.Remaining)
	}
	if stats.OverBudget {
		t.Fatal("OverBudget = true for empty ledger")
	}
}

func TestPerDayMergesTimeOfDay(t *testing.T) {
	records := []model.Record{
		rec("Coffee", 10, "Food", "2025-08-15T08:30:00Z"),
		rec("Lunch", 20, "Food", "2025-08-15T13:00:00Z"),
		rec("Dinner", 30, "Food", "2025-08-15"),
		rec("Bus", 5, "Transport", "2025-08-16"),
	}

	byDay := PerDay(records)
	if !approxEqual(byDay["2025-08-15"], 60) {
		t.Fatalf("perDay[2025-08-15] = %v, want 60", byDay["2025-08-15"])
	}
	if !approxEqual(byDay["2025-08-16"], 5) {
		t.Fatalf("perDay[2025-08-16] = %v, want 5", byDay["2025-08-16"])
	}
	if len(byDay) != 2 {
		t.Fatalf("perDay has %d keys, want 2", len(byDay))
	}
}

func TestPerDayRawKeyFallback(t *testing.T) {
	byDay := PerDay([]model.Record{rec("Odd", 7, "Other", "sometime")})
	if !approxEqual(byDay["sometime"], 7) {
		t.Fatalf("perDay[sometime] = %v, want 7", byDay["sometime"])
	}
}

func TestPerCategoryNoDefaultSubstitution(t *testing.T) {
	records := []model.Record{
		rec("Lunch", 100, "Food", "2025-08-15"),
		rec("Mystery", 50, "", "2025-08-15"),
	}

	totals := PerCategory(records)
	if len(totals) != 2 {
		t.Fatalf("PerCategory returned %d groups, want 2", len(totals))
	}
	// The charting variant keeps the empty category as-is.
	if totals[1].Category != "" {
		t.Fatalf("second group category = %q, want empty", totals[1].Category)
	}

	withDefault := PerCategoryWithDefault(records)
	if withDefault[1].Category != model.CategoryOther {
		t.Fatalf("defaulted category = %q, want %q", withDefault[1].Category, model.CategoryOther)
	}
}

func TestTopCategoryTieIsFirstEncountered(t *testing.T) {
	records := []model.Record{
		rec("Bus", 100, "Transport", "2025-08-10"),
		rec("Lunch", 100, "Food", "2025-08-11"),
	}

	top, ok := TopCategory(PerCategoryWithDefault(records))
	if !ok {
		t.Fatal("TopCategory returned !ok")
	}
	if top.Category != "Transport" {
		t.Fatalf("tie broke to %q, want first-encountered Transport", top.Category)
	}

	// Reversed insertion order flips the winner.
	top, _ = TopCategory(PerCategoryWithDefault([]model.Record{records[1], records[0]}))
	if top.Category != "Food" {
		t.Fatalf("tie broke to %q, want Food", top.Category)
	}
}

func TestPerMonthLabels(t *testing.T) {
	records := []model.Record{
		rec("Lunch", 100, "Food", "2025-08-15"),
		rec("Bus", 50, "Transport", "2025-08-20T09:00:00Z"),
		rec("Rent", 300, "Bills", "2025-07-01"),
		rec("Junk", 999, "Other", "not-a-date"),
	}

	months := PerMonth(records)
	if len(months) != 2 {
		t.Fatalf("PerMonth returned %d groups, want 2", len(months))
	}
	if months[0].Label != "Aug 2025" || !approxEqual(months[0].Total, 150) {
		t.Fatalf("first month = %q/%v, want Aug 2025/150", months[0].Label, months[0].Total)
	}
	if months[1].Label != "Jul 2025" || !approxEqual(months[1].Total, 300) {
		t.Fatalf("second month = %q/%v, want Jul 2025/300", months[1].Label, months[1].Total)
	}
}

func TestLastMonthJanuaryRollsOver(t *testing.T) {
	now := mustTime(t, "2025-01-15")
	records := []model.Record{
		rec("NYE", 80, "Food", "2024-12-31"),
		rec("Lunch", 40, "Food", "2025-01-10"),
	}

	last := LastMonth(records, now)
	if len(last) != 1 || last[0].Title != "NYE" {
		t.Fatalf("LastMonth = %v, want just the December record", last)
	}

	this := ThisMonth(records, now)
	if len(this) != 1 || this[0].Title != "Lunch" {
		t.Fatalf("ThisMonth = %v, want just the January record", this)
	}
}

func TestWeekendTotal(t *testing.T) {
	// 2025-08-02 is a Saturday, 2025-08-03 a Sunday.
	records := []model.Record{
		rec("Brunch", 120, "Food", "2025-08-02"),
		rec("Cinema", 80, "Other", "2025-08-03"),
		rec("Bus", 30, "Transport", "2025-08-04"),
	}
	if got := WeekendTotal(records); !approxEqual(got, 200) {
		t.Fatalf("WeekendTotal = %v, want 200", got)
	}
}

func TestSummarize(t *testing.T) {
	now := mustTime(t, "2025-08-15")
	records := []model.Record{
		rec("Brunch", 200, "Food", "2025-08-02"), // Saturday
		rec("Bus", 100, "Transport", "2025-08-04"),
		rec("Groceries", 50, "Food", "2025-07-11"),
	}

	s := Summarize(records, now)
	if !approxEqual(s.ThisMonthTotal, 300) {
		t.Fatalf("ThisMonthTotal = %v, want 300", s.ThisMonthTotal)
	}
	if !approxEqual(s.LastMonthTotal, 50) {
		t.Fatalf("LastMonthTotal = %v, want 50", s.LastMonthTotal)
	}
	if s.WeekendPercent != 67 {
		t.Fatalf("WeekendPercent = %d, want 67", s.WeekendPercent)
	}
	if s.TopCategory != "Food" {
		t.Fatalf("TopCategory = %q, want Food", s.TopCategory)
	}
}

func TestParseDateLayouts(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2025-08-15", true},
		{"2025-08-15T13:00:00Z", true},
		{"2025-08-15T13:00:00", true},
		{"2025-08-15T13:00", true},
		{"15/08/2025", false},
		{"", false},
	}
	for _, tc := range cases {
		if _, ok := ParseDate(tc.in); ok != tc.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
}
