// Package money formats minor-unit amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders paise as Indian Rupees with lakh/crore grouping,
// e.g. 10000000 -> "₹1,00,000.00".
func FormatINR(paise int64) string {
	neg := paise < 0
	if neg {
		paise = -paise
	}
	fixed := decimal.New(paise, -2).StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(whole))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// groupIndian groups the last three digits, then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(append(parts, tail), ",")
}
