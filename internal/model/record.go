// Package model defines the persisted records and derived statistics for expenseai.
package model

// Record is one expense entry. Records are immutable once created; the
// ledger only appends at the head or removes by position.
type Record struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	// Date is an ISO-8601 date string, possibly with a time component
	// ("2025-08-31" or "2025-08-31T14:02:00Z").
	Date string `json:"date"`
}

// Known categories. Arbitrary category strings are accepted; these are the
// ones offered by the add form and given icons in the ledger view.
const (
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryBills     = "Bills"
	CategoryShopping  = "Shopping"
	CategoryOther     = "Other"
)

// Categories lists the known categories in display order.
var Categories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryBills,
	CategoryShopping,
	CategoryOther,
}

var categoryIcons = map[string]string{
	CategoryFood:      "🍕",
	CategoryTransport: "🚌",
	CategoryBills:     "💡",
	CategoryShopping:  "🛍️",
	CategoryOther:     "🔖",
}

// CategoryIcon returns the icon for a known category, or "" for others.
func CategoryIcon(category string) string {
	return categoryIcons[category]
}
