// Package pricing turns re-priced cart lines and a validated coupon into the
// payable amount. All amounts are integer minor units.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/dryfruits-storefront/internal/coupon"
)

type Line struct {
	ProductID string
	Quantity  int
	UnitPrice int64
}

func Subtotal(lines []Line) int64 {
	var total int64
	for _, l := range lines {
		total += l.UnitPrice * int64(l.Quantity)
	}
	return total
}

var hundred = decimal.NewFromInt(100)

// Discount returns the amount taken off subtotal by c, truncated to whole
// minor units. FREE_SHIPPING and a nil coupon discount nothing here.
func Discount(subtotal int64, c *coupon.Coupon) int64 {
	if c == nil || subtotal <= 0 {
		return 0
	}
	var d int64
	switch c.DiscountType {
	case coupon.FixedAmount:
		d = c.DiscountValue.Truncate(0).IntPart()
	case coupon.Percentage:
		d = decimal.NewFromInt(subtotal).Mul(c.DiscountValue).Div(hundred).Truncate(0).IntPart()
	}
	return max(0, min(d, subtotal))
}

// FinalAmount is never negative.
func FinalAmount(subtotal int64, c *coupon.Coupon) int64 {
	return max(0, subtotal-Discount(subtotal, c))
}
