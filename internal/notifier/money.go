package notifier

import (
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatMoney renders amount in currency, rounded to the currency's minor unit.
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).BigInt()
	if !minor.IsInt64() {
		// go-money works in int64 minor units; keep the digits exact instead.
		digits := amount.StringFixed(int32(cur.Fraction))
		return strings.Replace(strings.Replace(cur.Template, "1", digits, 1), "$", cur.Grapheme, 1)
	}
	return money.New(minor.Int64(), cur.Code).Display()
}

// FormatROI renders a percentage with as many digits as it was given.
func FormatROI(roi float64) string {
	return strconv.FormatFloat(roi, 'f', -1, 64)
}
