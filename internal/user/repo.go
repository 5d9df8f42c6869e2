package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrAlreadyExist = errors.New("user already exists")
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	CreateSession(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error
	// SessionUser returns the owner of a session that is still valid at now.
	SessionUser(ctx context.Context, tokenHash string, now time.Time) (string, error)
	DeleteSession(ctx context.Context, tokenHash string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *PGRepo) Create(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW())
		RETURNING created_at, updated_at
	`, u.ID, u.Name, u.Email, u.PasswordHash).Scan(&u.CreatedAt, &u.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrAlreadyExist
	}
	return err
}

func (r *PGRepo) getBy(ctx context.Context, where string, arg string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE `+where, arg)
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*User, error) {
	return r.getBy(ctx, "id::text=$1", id)
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getBy(ctx, "email=$1", email)
}

func (r *PGRepo) CreateSession(ctx context.Context, tokenHash, userID string, expiresAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (token_hash, user_id, expires_at) VALUES ($1,$2,$3)
	`, tokenHash, userID, expiresAt)
	return err
}

func (r *PGRepo) SessionUser(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var userID string
	err := r.db.QueryRow(ctx, `
		SELECT user_id::text FROM sessions WHERE token_hash=$1 AND expires_at > $2
	`, tokenHash, now).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return userID, err
}

func (r *PGRepo) DeleteSession(ctx context.Context, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token_hash=$1`, tokenHash)
	return err
}
