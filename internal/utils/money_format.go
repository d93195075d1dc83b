package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places every stored amount carries.
const MoneyPrecision = 2

// FormatMoney renders an amount with exactly two decimal places.
// Example: 500 returns "500.00", -12.5 returns "-12.50"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}
