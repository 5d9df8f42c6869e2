package coupon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// GetActive returns the active coupon with the given (upper-case) code
	// or ErrNotFound.
	GetActive(ctx context.Context, code string) (*Coupon, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetActive(ctx context.Context, code string) (*Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		c     Coupon
		dtype string
		value *string
	)
	err := r.db.QueryRow(ctx, `
		SELECT code, is_active, expiry_date, min_order_amount, discount_type, discount_value::text
		FROM coupons WHERE code=$1 AND is_active = true
	`, code).Scan(&c.Code, &c.IsActive, &c.ExpiryDate, &c.MinOrderAmount, &dtype, &value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	c.DiscountType = DiscountType(dtype)
	if value != nil {
		d, err := decimal.NewFromString(*value)
		if err != nil {
			return nil, fmt.Errorf("coupon %s: bad discount_value %q: %w", c.Code, *value, err)
		}
		c.DiscountValue = d
	}
	return &c, nil
}
