package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	// Create writes the header and every item in one transaction.
	Create(ctx context.Context, o *Order, items []Item) error
	GetForUser(ctx context.Context, id, userID string) (*Order, []Item, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error)
	GetByTransaction(ctx context.Context, txnID string) (*Order, error)
	// Transition moves the order with txnID from -> to and reports whether a
	// row changed. It never touches an order that is not currently in from.
	Transition(ctx context.Context, txnID string, from, to Status) (bool, error)
}

// conn is the subset of *pgxpool.Pool the repository needs.
type conn interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGRepo struct{ db conn }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order, items []Item) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	// no-op after a successful Commit
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, user_id, amount, status, shipping_address, coupon_code, merchant_transaction_id, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
  `, o.ID, o.UserID, o.Amount, string(o.Status), o.ShippingAddress, o.CouponCode, o.MerchantTransactionID); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
      INSERT INTO order_items (id, order_id, product_id, quantity, price)
      VALUES ($1,$2,$3,$4,$5)
    `, it.ID, o.ID, it.ProductID, it.Quantity, it.Price); err != nil {
			return fmt.Errorf("insert order item %s: %w", it.ProductID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

const orderColumns = `id, user_id, amount, status, shipping_address, coupon_code, merchant_transaction_id, created_at, updated_at`

func scanOrder(row pgx.Row, o *Order) error {
	var status string
	if err := row.Scan(&o.ID, &o.UserID, &o.Amount, &status, &o.ShippingAddress,
		&o.CouponCode, &o.MerchantTransactionID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}
	o.Status = Status(status)
	return nil
}

func (r *PGRepo) GetForUser(ctx context.Context, id, userID string) (*Order, []Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := scanOrder(r.db.QueryRow(ctx, `
    SELECT `+orderColumns+`
    FROM orders WHERE id::text=$1 AND user_id::text=$2
  `, id, userID), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.db.Query(ctx, `
    SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
           COALESCE(p.name, ''), COALESCE(p.images, '{}')
    FROM order_items oi
    LEFT JOIN products p ON p.id = oi.product_id
    WHERE oi.order_id = $1
    ORDER BY p.name
  `, o.ID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price, &it.Name, &it.Images); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return &o, items, rows.Err()
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx, `
    SELECT `+orderColumns+`
    FROM orders WHERE user_id::text=$1
    ORDER BY created_at DESC LIMIT $2 OFFSET $3
  `, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Order{}
	for rows.Next() {
		var o Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByTransaction(ctx context.Context, txnID string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := scanOrder(r.db.QueryRow(ctx, `
    SELECT `+orderColumns+`
    FROM orders WHERE merchant_transaction_id=$1
  `, txnID), &o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) Transition(ctx context.Context, txnID string, from, to Status) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $3, updated_at = NOW()
    WHERE merchant_transaction_id = $1 AND status = $2
  `, txnID, string(from), string(to))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
