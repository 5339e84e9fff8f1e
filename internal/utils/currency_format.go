package utils

import (
	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// zeroDecimalDisplay lists currencies the dashboard displays without
// fractional digits, whatever their ISO fraction is. Computed conversion
// amounts stay 2-decimal; this applies to display only.
var zeroDecimalDisplay = map[string]bool{
	"UZS": true,
	"KZT": true,
}

// DisplayPrecision returns the number of fractional digits to use when
// formatting an amount of the given currency for display. Falls back to the
// ISO fraction known to go-money, then to 2.
func DisplayPrecision(currencyCode string) int {
	if zeroDecimalDisplay[currencyCode] {
		return 0
	}
	if c := money.GetCurrency(currencyCode); c != nil {
		return c.Fraction
	}
	return 2
}

// FormatAmount formats an amount for display with the currency's precision.
// Example: 12.3456 USD -> "12.35"; 1250000.4 UZS -> "1250000".
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	return amount.StringFixed(int32(DisplayPrecision(currencyCode)))
}
