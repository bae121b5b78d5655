// Package format renders monetary amounts for display.
package format

import (
	"github.com/iwvelando/aqi-planner/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a rupee string with thousands separators (e.g., "₹1,250,000").
func Currency(amount int64) string {
	if amount < 0 {
		return "-" + constants.CurrencySymbol + Grouped(-amount)
	}
	return constants.CurrencySymbol + Grouped(amount)
}

// CurrencyRange renders a "low - high" pair of amounts.
func CurrencyRange(low, high int64) string {
	return Currency(low) + " - " + Currency(high)
}

// Grouped returns the amount with comma thousands separators and no symbol.
func Grouped(amount int64) string {
	return printer.Sprintf("%d", amount)
}
