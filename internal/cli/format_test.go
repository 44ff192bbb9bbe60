package cli

import (
	"testing"

	"expenseai/internal/model"
)

func TestFormatMoney(t *testing.T) {
	inr := model.Settings{Currency: model.CurrencyINR}
	usd := model.Settings{Currency: model.CurrencyUSD}

	if got := FormatMoney(350, inr); got != "₹350.00" {
		t.Fatalf("FormatMoney INR = %q", got)
	}
	if got := FormatMoney(49.5, usd); got != "$49.50" {
		t.Fatalf("FormatMoney USD = %q", got)
	}
	// Unknown currency falls back to the rupee symbol.
	if got := FormatMoney(1, model.Settings{Currency: "EUR"}); got != "₹1.00" {
		t.Fatalf("FormatMoney fallback = %q", got)
	}
}

func TestFormatSigned(t *testing.T) {
	s := model.Settings{Currency: model.CurrencyINR}
	if got := FormatSigned(-150, s); got != "-₹150.00" {
		t.Fatalf("FormatSigned = %q", got)
	}
	if got := FormatSigned(150, s); got != "₹150.00" {
		t.Fatalf("FormatSigned = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("empty sparkline = %q", got)
	}
	got := RenderSparkline([]float64{0, 1, 2, 4})
	if len([]rune(got)) != 4 {
		t.Fatalf("sparkline length = %d runes, want 4", len([]rune(got)))
	}
}
