// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"

	"expenseai/internal/model"
)

// FormatMoney formats an amount with the settings' currency symbol and two
// decimal places, e.g. "₹350.00".
func FormatMoney(v float64, settings model.Settings) string {
	return fmt.Sprintf("%s%.2f", settings.Symbol(), v)
}

// FormatSigned formats an amount like FormatMoney but keeps an explicit
// minus sign in front of the symbol for negative values, e.g. "-₹12.50".
func FormatSigned(v float64, settings model.Settings) string {
	if v < 0 {
		return "-" + FormatMoney(-v, settings)
	}
	return FormatMoney(v, settings)
}
