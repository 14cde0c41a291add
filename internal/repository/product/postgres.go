package product

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
)

type postgresRepo struct {
	pool    *pgxpool.Pool
	logger  *log.Logger
	timeout time.Duration
}

// NewPostgres returns a Repository backed by Postgres. Every store call is
// bounded by timeout.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger, timeout time.Duration) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &postgresRepo{pool: pool, logger: logger, timeout: timeout}
}

func (r *postgresRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	const q = `
SELECT id::text, name, price, original_price, category, COALESCE(image, ''), COALESCE(description, ''), rating, reviews, in_stock, created_at
FROM products
WHERE $1 = '' OR category = $1
ORDER BY created_at, id
`
	rows, err := r.pool.Query(ctx, q, category)
	if err != nil {
		r.logger.Printf("product repo: list category=%q error=%v", category, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Category, &p.Image, &p.Description, &p.Rating, &p.Reviews, &p.InStock, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows category=%q error=%v", category, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// xmax = 0 distinguishes a fresh insert from a conflict update.
	const q = `
INSERT INTO products (name, price, original_price, category, image, description, rating, reviews, in_stock)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (name) DO UPDATE SET
    price = EXCLUDED.price,
    original_price = EXCLUDED.original_price,
    category = EXCLUDED.category,
    image = EXCLUDED.image,
    description = EXCLUDED.description,
    rating = EXCLUDED.rating,
    reviews = EXCLUDED.reviews,
    in_stock = EXCLUDED.in_stock
RETURNING (xmax = 0)
`
	var inserted bool
	err := r.pool.QueryRow(ctx, q,
		p.Name,
		p.Price,
		p.OriginalPrice,
		p.Category,
		p.Image,
		p.Description,
		p.Rating,
		p.Reviews,
		p.InStock,
	).Scan(&inserted)
	if err != nil {
		r.logger.Printf("product repo: upsert name=%q error=%v", p.Name, err)
		return false, err
	}
	return inserted, nil
}
