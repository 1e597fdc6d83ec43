package presenter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every formatted price.
const CurrencySymbol = "₹"

// en-IN groups the last three digits, then every two (lakh/crore).
var pricePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders an integer amount with Indian digit grouping.
func FormatPrice(price int64) string {
	return CurrencySymbol + pricePrinter.Sprintf("%d", price)
}
