package i18n

import (
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatPrice renders a USD amount with grouping for lang.
func FormatPrice(lang Lang, amount float64) string {
	p := message.NewPrinter(lang.Tag())
	n := p.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
	if lang == English || !lang.IsSupported() {
		return "$" + n
	}
	return n + " $"
}
