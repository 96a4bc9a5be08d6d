package storefront

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatPrice renders a VND amount with the digit grouping of the given locale, e.g. "1.000.000 ₫".
func FormatPrice(tag language.Tag, amount int64) string {
	return message.NewPrinter(tag).Sprintf("%d ₫", amount)
}
