// Package review stores customer reviews of catalog products.
package review

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalid        = errors.New("invalid review")
	ErrUnknownProduct = errors.New("invalid product id")
)

type Repository interface {
	ListByProduct(ctx context.Context, productID string) ([]Review, error)
	Create(ctx context.Context, r *Review) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, user_id, user_name, rating, comment, image_url, created_at
		FROM reviews WHERE product_id=$1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.UserName, &rv.Rating,
			&rv.Comment, &rv.ImageURL, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// Create maps a foreign-key violation on product_id to ErrUnknownProduct.
func (r *PGRepo) Create(ctx context.Context, rv *Review) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (id, product_id, user_id, user_name, rating, comment, image_url, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
		RETURNING created_at
	`, rv.ID, rv.ProductID, rv.UserID, rv.UserName, rv.Rating, rv.Comment, rv.ImageURL).Scan(&rv.CreatedAt)
	return mapInsertError(err)
}

func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrUnknownProduct
	}
	return err
}

// New validates a request and builds the review to insert.
func New(in CreateRequest, userID, userName string) (*Review, error) {
	productID := strings.TrimSpace(in.ProductID)
	comment := strings.TrimSpace(in.Comment)
	if productID == "" || comment == "" {
		return nil, fmt.Errorf("%w: productId and comment are required", ErrInvalid)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalid)
	}
	rv := &Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    in.Rating,
		Comment:   comment,
	}
	if raw := strings.TrimSpace(in.ImageURL); raw != "" {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: imageUrl must be an http(s) URL", ErrInvalid)
		}
		rv.ImageURL = &raw
	}
	return rv, nil
}
