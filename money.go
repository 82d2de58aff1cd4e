package khata

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCodes maps the currency symbols offered by the settings screen to
// ISO codes, for digit grouping and fraction handling.
var currencyCodes = map[string]string{
	"Rs.": "PKR",
	"Rs":  "PKR",
	"₨":   "PKR",
	"$":   "USD",
	"€":   "EUR",
	"£":   "GBP",
}

// FormatMoney renders an amount with the shop's configured currency symbol.
// Known symbols are formatted through go-money with the symbol the shop
// chose; unknown symbols fall back to "symbol amount" verbatim.
func FormatMoney(v decimal.Decimal, symbol string) string {
	code, ok := currencyCodes[symbol]
	if !ok {
		return symbol + " " + v.String()
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return symbol + " " + v.String()
	}
	f := money.NewFormatter(cur.Fraction, ".", ",", symbol, "$ 1")
	return f.Format(v.Shift(int32(cur.Fraction)).Round(0).IntPart())
}
