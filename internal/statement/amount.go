package statement

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw amount cell to a decimal. It strips currency
// symbols, thousands separators, whitespace, and accounting parentheses.
// Negativity is detected from a leading "-" or full parenthesization BEFORE
// stripping: stripping first would silently turn negative values positive.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Decimal{}, false
	}

	negative := strings.HasPrefix(cleaned, "-") ||
		(strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")"))

	cleaned = strings.Map(func(r rune) rune {
		switch {
		case r == '$' || r == ',' || r == '(' || r == ')' || r == '-':
			return -1
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, cleaned)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}

	if negative {
		return amount.Abs().Neg(), true
	}
	return amount, true
}
