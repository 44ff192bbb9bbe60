// Package insight renders fixed-template spending observations from the
// month-scoped aggregates: weekend share, largest category, food trend,
// and the overall month-over-month trend.
package insight

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"expenseai/internal/model"
	"expenseai/internal/pipeline"
)

// IsFood reports whether a category counts as food spending. Besides the
// case-insensitive substring test, a pizza icon anywhere in the category
// matches; earlier releases stored icon-prefixed category names and saved
// ledgers still carry them.
func IsFood(category string) bool {
	if category == "" {
		return false
	}
	return strings.Contains(strings.ToLower(category), "food") ||
		strings.Contains(category, "🍕")
}

// Short formats a spend magnitude for insertion into a sentence: values of
// 1000 and above render as a one-decimal "k" figure, smaller values round
// to at most two decimal places.
func Short(v float64) string {
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("%.1fk", v/1000)
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// RoundTenth rounds a percentage to the nearest 0.1.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Generate produces the insight sentences for the given ledger snapshot,
// in fixed order: weekend share, largest category, food comparison,
// overall trend. The first two are omitted when this month has no spend.
func Generate(records []model.Record, now time.Time) []string {
	thisMonth := pipeline.ThisMonth(records, now)
	lastMonth := pipeline.LastMonth(records, now)

	totalThis := pipeline.Total(thisMonth)
	totalLast := pipeline.Total(lastMonth)

	var insights []string

	if totalThis > 0 {
		weekendPct := int(math.Round(pipeline.WeekendTotal(thisMonth) / totalThis * 100))
		insights = append(insights, fmt.Sprintf(
			"You spent %d%% of your %s this month on weekends.", weekendPct, Short(totalThis)))
	}

	if top, ok := pipeline.TopCategory(pipeline.PerCategoryWithDefault(thisMonth)); ok {
		insights = append(insights, fmt.Sprintf(
			"Largest spend this month: %s (%s).", top.Category, Short(top.Total)))
	}

	insights = append(insights, foodMessage(thisMonth, lastMonth))
	insights = append(insights, overallMessage(totalThis, totalLast))

	return insights
}

func foodMessage(thisMonth, lastMonth []model.Record) string {
	foodThis := foodTotal(thisMonth)
	foodLast := foodTotal(lastMonth)

	switch {
	case foodThis == 0 && foodLast == 0:
		return "No food expenses recorded in the last two months."
	case foodLast == 0 && foodThis > 0:
		return fmt.Sprintf(
			"Food expenses appeared this month (%s) — keep an eye on recurring costs.", Short(foodThis))
	}

	diff := foodThis - foodLast
	pctDiff := 0
	if foodLast > 0 {
		pctDiff = int(math.Round(math.Abs(diff) / foodLast * 100))
	}
	if pctDiff == 0 {
		return "Food expenses stayed about the same as last month."
	}
	direction := "increased"
	if diff < 0 {
		direction = "decreased"
	}
	return fmt.Sprintf("Food expenses %s by %d%% compared to last month.", direction, pctDiff)
}

func overallMessage(totalThis, totalLast float64) string {
	switch {
	case totalLast == 0 && totalThis > 0:
		return fmt.Sprintf("You started tracking this month with total spend %s.", Short(totalThis))
	case totalLast > 0:
		diff := totalThis - totalLast
		pct := int(math.Round(math.Abs(diff) / totalLast * 100))
		switch {
		case diff > 0:
			return fmt.Sprintf("Total spending increased by %d%% compared to last month.", pct)
		case diff < 0:
			return fmt.Sprintf("Total spending decreased by %d%% compared to last month.", pct)
		default:
			return "Total spending is similar to last month."
		}
	default:
		return "Not enough data to compare months."
	}
}

func foodTotal(records []model.Record) float64 {
	var total float64
	for _, r := range records {
		if IsFood(r.Category) {
			total += r.Amount
		}
	}
	return total
}
