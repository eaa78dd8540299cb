package utils

import (
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount for log lines, e.g. 31.97 -> "$31.97".
func FormatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}
