package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayLocale = language.Italian

// FormatEUR renders an amount for display using Italian number conventions.
func FormatEUR(amount decimal.Decimal) string {
	p := message.NewPrinter(displayLocale)
	f, _ := amount.Round(2).Float64()
	return p.Sprintf("€ %.2f", f)
}
