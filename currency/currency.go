// Package currency formats integer currency amounts the same way everywhere a
// price is shown.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// nbsp separates the symbol from the amount, as Intl.NumberFormat does.
const nbsp = "\u00a0"

// Formatter renders whole-unit amounts with locale digit grouping, no
// fraction digits and a symbol prefix, e.g. "Rp 13.000" for id.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 locale. An unparsable locale
// falls back to Indonesian.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Indonesian
	}
	return &Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Default is the storefront's Rupiah formatter.
func Default() *Formatter {
	return NewFormatter("id", "Rp")
}

// Format renders amount.
func (f *Formatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + nbsp + f.printer.Sprintf("%d", -amount)
	}
	return f.symbol + nbsp + f.printer.Sprintf("%d", amount)
}
