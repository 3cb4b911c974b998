package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The app renders a single fixed currency: Indian rupees with two decimals
// and en-IN digit grouping.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// Currency formats an amount as "₹1,23,456.78".
func Currency(v float64) string {
	return printer.Sprint("₹", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Percent formats a tax rate for the "Tax (N%)" label, trimming a trailing
// ".0" for whole rates.
func Percent(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)), "%")
}

// Date renders the fixed human date format: day, abbreviated month, year.
func Date(t time.Time) string {
	return t.Format("02 Jan 2006")
}
