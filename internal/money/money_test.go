package money

import "testing"

func TestFormatINR(t *testing.T) {
	cases := map[int64]string{
		0:           "₹0.00",
		5:           "₹0.05",
		10000:       "₹100.00",
		100000:      "₹1,000.00",
		123456789:   "₹12,34,567.89",
		10000000:    "₹1,00,000.00",
		10000000000: "₹10,00,00,000.00",
		-250050:     "-₹2,500.50",
	}
	for in, want := range cases {
		if got := FormatINR(in); got != want {
			t.Errorf("FormatINR(%d)=%q, want %q", in, got, want)
		}
	}
}
