// Package product provides the catalog repository backed by PostgreSQL and an
// optional Redis read-through cache.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("product not found")
)

// PageSize is the fixed catalog page size.
const PageSize = 12

type Query struct {
	Category string // "" or "all" disables the filter
	MinPrice *int64
	MaxPrice *int64
	InStock  bool
	Page     int
}

// page normalizes the requested page to >= 1.
func (q Query) page() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}

type Repository interface {
	List(ctx context.Context, q Query) ([]Product, int, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	PricesByIDs(ctx context.Context, ids []string) (map[string]Quote, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const productColumns = `id, name, description, category, price, original_price, images, in_stock, created_at`

func scanProduct(row pgx.Row, p *Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price,
		&p.OriginalPrice, &p.Images, &p.InStock, &p.CreatedAt)
}

// buildFilter returns the WHERE clause and its positional args.
func buildFilter(q Query) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(expr string, v any) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(expr, len(args)))
	}
	if c := strings.TrimSpace(q.Category); c != "" && !strings.EqualFold(c, "all") {
		add("category ILIKE $%d", c)
	}
	if q.MinPrice != nil {
		add("price >= $%d", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		add("price <= $%d", *q.MaxPrice)
	}
	if q.InStock {
		add("in_stock = $%d", true)
	}
	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	where, args := buildFilter(q)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (q.page() - 1) * PageSize
	listArgs := append(append([]any{}, args...), PageSize, offset)
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT `+productColumns+`
		FROM products
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2), listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Product, 0, PageSize)
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p Product
	err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PricesByIDs returns the current price and stock flag of every known id.
// Unknown ids are simply absent from the result.
func (r *PGRepo) PricesByIDs(ctx context.Context, ids []string) (map[string]Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT id, price, in_stock FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]Quote, len(ids))
	for rows.Next() {
		var q Quote
		if err := rows.Scan(&q.ID, &q.Price, &q.InStock); err != nil {
			return nil, err
		}
		out[q.ID] = q
	}
	return out, rows.Err()
}

// TotalPages is ceil(total / PageSize).
func TotalPages(total int) int {
	return (total + PageSize - 1) / PageSize
}
