// Package coupon validates discount codes against the coupon table.
package coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MikeMC777/dryfruits-storefront/internal/money"
)

var (
	ErrNotFound      = errors.New("coupon not found")
	ErrExpired       = errors.New("coupon expired")
	ErrMinimumNotMet = errors.New("coupon minimum order not met")
	ErrMisconfigured = errors.New("coupon misconfigured")
)

// RejectionError carries the customer-facing message for a rejected coupon.
// errors.Is matches the wrapped reason.
type RejectionError struct {
	Reason  error
	Message string
}

func (e *RejectionError) Error() string { return e.Reason.Error() + ": " + e.Message }
func (e *RejectionError) Unwrap() error { return e.Reason }

func reject(reason error, msg string) error {
	return &RejectionError{Reason: reason, Message: msg}
}

// Normalize trims and upper-cases a code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type Validator struct {
	repo Repository
	now  func() time.Time
}

func NewValidator(repo Repository) *Validator {
	return &Validator{repo: repo, now: time.Now}
}

// WithClock overrides the validation clock.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Validate checks, in order: existence and activation, expiry, minimum order.
// Rejections are *RejectionError; any other error is a lookup failure.
func (v *Validator) Validate(ctx context.Context, code string, subtotal int64) (*Coupon, error) {
	code = Normalize(code)
	if code == "" {
		return nil, reject(ErrNotFound, "Invalid coupon code.")
	}

	c, err := v.repo.GetActive(ctx, code)
	if errors.Is(err, ErrNotFound) {
		return nil, reject(ErrNotFound, "Invalid coupon code.")
	}
	if err != nil {
		return nil, fmt.Errorf("lookup coupon: %w", err)
	}
	if !c.IsActive {
		return nil, reject(ErrNotFound, "Invalid coupon code.")
	}

	if c.ExpiryDate != nil && c.ExpiryDate.Before(v.now()) {
		return nil, reject(ErrExpired, "This coupon has expired.")
	}

	if c.MinOrderAmount != nil && subtotal < *c.MinOrderAmount {
		return nil, reject(ErrMinimumNotMet, fmt.Sprintf(
			"A minimum order of %s is required to use this coupon.", money.FormatINR(*c.MinOrderAmount)))
	}

	switch c.DiscountType {
	case Percentage, FixedAmount:
		if c.DiscountValue.IsNegative() {
			return nil, reject(ErrMisconfigured, "Invalid coupon code.")
		}
	case FreeShipping:
	default:
		return nil, reject(ErrMisconfigured, "Invalid coupon code.")
	}
	return c, nil
}
