package account

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) Create(ctx context.Context, a domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	const q = `
INSERT INTO accounts (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id::text, name, email, password_hash, created_at
`
	created, err := r.scanAccount(r.pool.QueryRow(ctx, q, a.Name, a.Email, a.PasswordHash))
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			r.logger.Printf("account repo: create email=%s error=%v", a.Email, err)
		}
		return nil, err
	}
	r.logger.Printf("account repo: created id=%s", created.ID)
	return created, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	const q = `
SELECT id::text, name, email, password_hash, created_at
FROM accounts
WHERE email = $1
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	const q = `
SELECT id::text, name, email, password_hash, created_at
FROM accounts
WHERE id = $1
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &a, nil
}
