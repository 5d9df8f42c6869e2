package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	Percentage   DiscountType = "PERCENTAGE"
	FixedAmount  DiscountType = "FIXED_AMOUNT"
	FreeShipping DiscountType = "FREE_SHIPPING"
)

// Coupon is the usable-coupon descriptor handed to pricing.
// MinOrderAmount is in minor units; DiscountValue is a percentage for
// PERCENTAGE and minor units for FIXED_AMOUNT.
type Coupon struct {
	Code           string          `json:"code"`
	IsActive       bool            `json:"isActive"`
	ExpiryDate     *time.Time      `json:"expiryDate,omitempty"`
	MinOrderAmount *int64          `json:"minOrderAmount,omitempty"`
	DiscountType   DiscountType    `json:"discountType"`
	DiscountValue  decimal.Decimal `json:"discountValue"`
}

// ValidateRequest is the advisory validation payload.
// swagger:model ValidateRequest
type ValidateRequest struct {
	Code     string `json:"code"     example:"DATES10"`
	Subtotal int64  `json:"subtotal" example:"150000"`
}

// ValidateResponse is returned by POST /api/coupons/validate.
// swagger:model ValidateResponse
type ValidateResponse struct {
	Success bool    `json:"success"`
	Coupon  *Coupon `json:"coupon,omitempty"`
	Message string  `json:"message,omitempty"`
}
