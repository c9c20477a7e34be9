package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// INR renders a whole-rupee amount with the rupee sign and Indian digit
// grouping. Example: INR(234567) => "₹2,34,567".
func INR(amount int64) string {
	return inrPrinter.Sprintf("₹%d", amount)
}
