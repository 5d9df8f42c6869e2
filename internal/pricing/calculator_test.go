package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MikeMC777/dryfruits-storefront/internal/coupon"
)

func pct(v string) *coupon.Coupon {
	return &coupon.Coupon{Code: "P", DiscountType: coupon.Percentage, DiscountValue: decimal.RequireFromString(v)}
}

func fixed(v int64) *coupon.Coupon {
	return &coupon.Coupon{Code: "F", DiscountType: coupon.FixedAmount, DiscountValue: decimal.NewFromInt(v)}
}

func TestSubtotal(t *testing.T) {
	lines := []Line{
		{ProductID: "a", Quantity: 2, UnitPrice: 45000},
		{ProductID: "b", Quantity: 1, UnitPrice: 12550},
	}
	assert.Equal(t, int64(102550), Subtotal(lines))
	assert.Equal(t, int64(0), Subtotal(nil))
}

func TestFinalAmount_Scenarios(t *testing.T) {
	assert.Equal(t, int64(9000), FinalAmount(10000, pct("10")))
	assert.Equal(t, int64(10000), FinalAmount(10000, nil))
	assert.Equal(t, int64(7500), FinalAmount(10000, fixed(2500)))
	assert.Equal(t, int64(10000), FinalAmount(10000, &coupon.Coupon{DiscountType: coupon.FreeShipping}))
}

func TestFinalAmount_PercentageTruncatesDiscount(t *testing.T) {
	// 12.5% of 999 = 124.875 -> 124 off
	assert.Equal(t, int64(875), FinalAmount(999, pct("12.5")))
	// 33% of 1 = 0.33 -> nothing off
	assert.Equal(t, int64(1), FinalAmount(1, pct("33")))
}

func TestFinalAmount_NeverNegative(t *testing.T) {
	subtotals := []int64{0, 1, 99, 10000, 1 << 40}
	coupons := []*coupon.Coupon{
		nil, pct("0"), pct("50"), pct("100"), pct("150"), pct("999.99"),
		fixed(0), fixed(1), fixed(10000), fixed(1 << 50),
	}
	for _, s := range subtotals {
		for _, c := range coupons {
			got := FinalAmount(s, c)
			assert.GreaterOrEqual(t, got, int64(0))
			assert.LessOrEqual(t, got, s)
		}
	}
}
