// Package pipeline derives totals, per-day/category/month aggregates, and
// month comparisons from the raw record list. Everything here is a pure
// function of (records, settings, now); nothing is cached or stored.
package pipeline

import (
	"math"
	"strings"
	"time"

	"expenseai/internal/model"
)

// Total sums all record amounts (all-time, not month-scoped).
func Total(records []model.Record) float64 {
	var total float64
	for _, r := range records {
		total += r.Amount
	}
	return total
}

// Stats computes the headline ledger aggregate against the budget.
func Stats(records []model.Record, settings model.Settings) model.LedgerStats {
	total := Total(records)
	remaining := settings.Budget - total
	return model.LedgerStats{
		Total:      total,
		Budget:     settings.Budget,
		Remaining:  remaining,
		OverBudget: remaining < 0,
	}
}

// PerDay groups spend by calendar day. The key is the record's date string
// truncated at the time separator; records whose date has no separable day
// component keep their raw date string as the key, so entries for the same
// day merge regardless of time-of-day.
func PerDay(records []model.Record) map[string]float64 {
	byDay := make(map[string]float64)
	for _, r := range records {
		day, _, _ := strings.Cut(r.Date, "T")
		if day == "" {
			day = r.Date
		}
		byDay[day] += r.Amount
	}
	return byDay
}

// PerCategory groups spend by category in first-encountered order. This is
// the charting variant: a missing category stays the empty string, no
// default is substituted.
func PerCategory(records []model.Record) []model.CategoryTotal {
	return groupByCategory(records, false)
}

// PerCategoryWithDefault groups spend by category, mapping a missing
// category to "Other". Used for the month-scoped "largest category" view.
func PerCategoryWithDefault(records []model.Record) []model.CategoryTotal {
	return groupByCategory(records, true)
}

func groupByCategory(records []model.Record, defaultOther bool) []model.CategoryTotal {
	index := make(map[string]int)
	var totals []model.CategoryTotal
	for _, r := range records {
		cat := r.Category
		if cat == "" && defaultOther {
			cat = model.CategoryOther
		}
		i, ok := index[cat]
		if !ok {
			i = len(totals)
			index[cat] = i
			totals = append(totals, model.CategoryTotal{Category: cat})
		}
		totals[i].Total += r.Amount
	}
	return totals
}

// TopCategory returns the category with the highest total. Ties resolve to
// the first-encountered category, so the result is stable for a given
// record order.
func TopCategory(totals []model.CategoryTotal) (model.CategoryTotal, bool) {
	if len(totals) == 0 {
		return model.CategoryTotal{}, false
	}
	top := totals[0]
	for _, ct := range totals[1:] {
		if ct.Total > top.Total {
			top = ct
		}
	}
	return top, true
}

// PerMonth groups spend by calendar month with "Jan 2006" display labels,
// in first-encountered order. Records whose date does not parse are
// skipped.
func PerMonth(records []model.Record) []model.MonthTotal {
	index := make(map[string]int)
	var totals []model.MonthTotal
	for _, r := range records {
		t, ok := ParseDate(r.Date)
		if !ok {
			continue
		}
		label := t.Format("Jan 2006")
		i, found := index[label]
		if !found {
			i = len(totals)
			index[label] = i
			month := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
			totals = append(totals, model.MonthTotal{Label: label, Month: month})
		}
		totals[i].Total += r.Amount
	}
	return totals
}

// MonthRecords returns the records whose date falls in the given calendar
// year and month.
func MonthRecords(records []model.Record, year int, month time.Month) []model.Record {
	var out []model.Record
	for _, r := range records {
		t, ok := ParseDate(r.Date)
		if !ok {
			continue
		}
		if t.Year() == year && t.Month() == month {
			out = append(out, r)
		}
	}
	return out
}

// ThisMonth returns the records dated in the current calendar month.
func ThisMonth(records []model.Record, now time.Time) []model.Record {
	return MonthRecords(records, now.Year(), now.Month())
}

// LastMonth returns the records dated in the calendar month immediately
// before now. The year rolls over correctly when now is in January.
func LastMonth(records []model.Record, now time.Time) []model.Record {
	lm := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
	return MonthRecords(records, lm.Year(), lm.Month())
}

// WeekendTotal sums spend on Saturdays and Sundays.
func WeekendTotal(records []model.Record) float64 {
	var total float64
	for _, r := range records {
		t, ok := ParseDate(r.Date)
		if !ok {
			continue
		}
		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			total += r.Amount
		}
	}
	return total
}

// Summarize computes the month-scoped aggregates for the dashboard and
// insight generator.
func Summarize(records []model.Record, now time.Time) model.MonthSummary {
	thisMonth := ThisMonth(records, now)
	lastMonth := LastMonth(records, now)

	summary := model.MonthSummary{
		ThisMonthTotal: Total(thisMonth),
		LastMonthTotal: Total(lastMonth),
		WeekendTotal:   WeekendTotal(thisMonth),
	}
	if summary.ThisMonthTotal > 0 {
		summary.WeekendPercent = int(math.Round(summary.WeekendTotal / summary.ThisMonthTotal * 100))
	}
	if top, ok := TopCategory(PerCategoryWithDefault(thisMonth)); ok {
		summary.TopCategory = top.Category
		summary.TopCategoryTotal = top.Total
	}
	return summary
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDate parses a record date string in any of the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
