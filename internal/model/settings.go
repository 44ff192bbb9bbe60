package model

// Supported display currencies.
const (
	CurrencyINR = "INR"
	CurrencyUSD = "USD"
)

var currencySymbols = map[string]string{
	CurrencyINR: "₹",
	CurrencyUSD: "$",
}

// Settings holds the user's monthly budget and display currency. The
// settings document is replaced wholesale on every save.
type Settings struct {
	Budget   float64 `json:"budget"`
	Currency string  `json:"currency"`
}

// DefaultSettings returns the settings used when none have been saved yet.
func DefaultSettings() Settings {
	return Settings{Budget: 500, Currency: CurrencyINR}
}

// Symbol returns the currency symbol for these settings, defaulting to ₹
// for unknown currency codes.
func (s Settings) Symbol() string {
	if sym, ok := currencySymbols[s.Currency]; ok {
		return sym
	}
	return currencySymbols[CurrencyINR]
}

// ValidCurrency reports whether code is a supported currency.
func ValidCurrency(code string) bool {
	_, ok := currencySymbols[code]
	return ok
}
