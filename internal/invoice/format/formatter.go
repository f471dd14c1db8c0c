// Package format renders money, quantity and date values for display.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats an amount for display in the given ISO 4217 currency,
// symbol-prefixed where the currency is known ("$1,234.50"). Unknown or
// blank codes fall back to a "CODE 1234.50" form so bad input still renders.
// The amount stays decimal throughout; amounts beyond float range keep
// every digit.
func Money(amount decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))

	unit, err := currency.ParseISO(code)
	if err != nil {
		if code == "" {
			code = "USD"
		}
		return code + " " + amount.StringFixed(2)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	return sign + printer.Sprintf("%v", currency.Symbol(unit)) + number(amount)
}

// number formats with grouping separators and exactly two fraction digits.
func number(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	whole, frac := fixed[:dot], fixed[dot:]

	var b strings.Builder
	for i := 0; i < len(whole); i++ {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(whole[i])
	}
	return b.String() + frac
}

// Date renders an ISO calendar date as "Jan 02, 2006". Unparseable input is
// returned verbatim; blank input renders blank.
func Date(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 02, 2006")
}

// Quantity trims trailing zeros from a decimal quantity ("2", "0.5").
func Quantity(q decimal.Decimal) string {
	s := q.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
