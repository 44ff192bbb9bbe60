package model

import "time"

// LedgerStats holds the top-level aggregate over the whole ledger.
type LedgerStats struct {
	Total     float64
	Budget    float64
	Remaining float64
	// OverBudget is true when total spend exceeds the monthly budget.
	OverBudget bool
}

// CategoryTotal holds the summed spend for one category.
type CategoryTotal struct {
	Category string
	Total    float64
}

// MonthTotal holds the summed spend for one calendar month.
type MonthTotal struct {
	// Label is the display key, e.g. "Aug 2025".
	Label string
	Month time.Time
	Total float64
}

// MonthSummary holds the month-scoped aggregates the insight generator
// and dashboard consume.
type MonthSummary struct {
	ThisMonthTotal float64
	LastMonthTotal float64

	WeekendTotal   float64
	WeekendPercent int

	TopCategory      string
	TopCategoryTotal float64
}
