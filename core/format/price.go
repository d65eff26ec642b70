// Package format renders monetary amounts for display.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyJPY has no subunit in common display; amounts round to whole yen
// whenever fractional precision was not explicitly requested.
const currencyJPY = "JPY"

// Price renders amount as "<currency><grouped integer>[.<fraction>]".
//
// JPY with fewer than 4 requested decimals rounds to the nearest integer
// and renders with no fraction; every other case renders exactly decimals
// fractional digits. The thousands separator groups the integer part by 3
// from the right for all currencies, including JPY after rounding, and the
// fractional part is never touched. Only the yen rule is implemented;
// other currencies use the requested decimal count as-is.
func Price(amount decimal.Decimal, currency string, decimals int32) string {
	if currency == currencyJPY && decimals < 4 {
		decimals = 0
	}

	fixed := amount.StringFixed(decimals)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	integerPart := fixed
	fractionalPart := ""
	if dot := strings.IndexByte(fixed, '.'); dot >= 0 {
		integerPart = fixed[:dot]
		fractionalPart = fixed[dot:]
	}

	return currency + sign + groupThousands(integerPart) + fractionalPart
}

// groupThousands inserts a comma every 3 digits from the right
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
