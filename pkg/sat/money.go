package sat

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var mxPrinter = message.NewPrinter(language.MustParse("es-MX"))

// FormatAmount formatea un monto con separador de miles es-MX y hasta 2 decimales, prefijado con "$".
// Ejemplo: 150000 -> "$150,000"; 1234.5 -> "$1,234.5".
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "$" + mxPrinter.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}
