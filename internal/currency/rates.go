// Package currency provides static exchange rates and price formatting.
package currency

import "fmt"

// Rates maps currency codes to their exchange rate against 1 EUR.
// Sample rates; a real deployment would refresh these from a rates API.
var Rates = map[string]float64{
	"EUR": 1.0,
	"USD": 1.08,
	"GBP": 0.86,
	"CHF": 0.94,
	"CAD": 1.46,
	"AUD": 1.66,
	"JPY": 158.50,
	"CNY": 7.82,
	"INR": 89.75,
	"AED": 3.97,
	"THB": 36.50,
	"PLN": 4.32,
	"TRY": 34.60,
}

// symbols maps currency codes to display symbols. Codes without a dedicated
// symbol render as the code itself.
var symbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"THB": "฿",
}

// Convert converts an amount between two currencies via the EUR rate table.
// Unknown currencies leave the amount unchanged rather than failing.
func Convert(amount float64, from, to string) float64 {
	fromRate, okFrom := Rates[from]
	toRate, okTo := Rates[to]
	if !okFrom || !okTo {
		return amount
	}
	return amount / fromRate * toRate
}

// Format renders an amount with the currency's symbol, or the code when no
// symbol is known.
func Format(amount float64, code string) string {
	sym, ok := symbols[code]
	if !ok {
		sym = code
	}
	return fmt.Sprintf("%s%.2f", sym, amount)
}

// Known reports whether the currency code has an exchange rate.
func Known(code string) bool {
	_, ok := Rates[code]
	return ok
}
