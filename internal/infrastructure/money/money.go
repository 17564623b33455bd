package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var esCO = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders a price as Colombian pesos the way es-CO displays them,
// e.g. 1500000 -> "$ 1.500.000,00". Presentation only; the stored numeric
// price is never touched.
func FormatCOP(price float64) string {
	return esCO.Sprintf("$ %v", number.Decimal(price,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
