// Package numeric normalizes the decimal values that travel from CII into UBL.
package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse reads a decimal as it appears in XML content. Surrounding whitespace
// is ignored and a leading decimal point gets a zero prefix.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	} else if strings.HasPrefix(s, "-.") {
		s = "-0" + s[1:]
	}
	return decimal.NewFromString(s)
}

// FormatDecimal renders a decimal without trailing fractional zeros and
// without exponent notation. No rounding is applied.
func FormatDecimal(d decimal.Decimal) string {
	// String() trims trailing zeros of the fraction
	return d.String()
}

// Normalize parses s and formats it again. Values that cannot be parsed are
// returned trimmed and unchanged, together with false.
func Normalize(s string) (string, bool) {
	d, err := Parse(s)
	if err != nil {
		return strings.TrimSpace(s), false
	}
	return FormatDecimal(d), true
}

// IsZero reports whether s is a parseable decimal equal to zero.
func IsZero(s string) bool {
	d, err := Parse(s)
	return err == nil && d.IsZero()
}

// ReconcileSign adjusts quantity and price so that their product carries the
// sign of the extension amount. Nothing changes when swapping is disabled,
// when the extension amount is not negative or when the quantity is already
// negative. After the quantity is negated the price is flipped too if the
// product would otherwise still disagree with the extension amount.
func ReconcileSign(quantity, price, extension decimal.Decimal, swapEnabled bool) (decimal.Decimal, decimal.Decimal) {
	if !swapEnabled || !extension.IsNegative() || !quantity.IsPositive() {
		return quantity, price
	}

	quantity = quantity.Neg()
	if !price.IsZero() && quantity.Mul(price).Sign() != extension.Sign() {
		price = price.Neg()
	}
	return quantity, price
}
