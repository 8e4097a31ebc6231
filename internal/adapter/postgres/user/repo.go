// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/alpha-backend/internal/adapter/postgres"
	"github.com/heartmarshall/alpha-backend/internal/domain"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var userColumns = []string{"id", "name", "password_hash", "created_at"}

const countUsersSQL = `SELECT count(*) FROM users`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	if err := q.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("user %s", id))
	}

	return &u, nil
}

// GetByName returns a user by account name.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	sql, args, err := qb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	if err := q.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("user %q", name))
	}

	return &u, nil
}

// Create inserts a new user and returns the persisted record.
// Returns domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := qb.Insert("users").
		Columns(userColumns...).
		Values(u.ID, u.Name, u.PasswordHash, u.CreatedAt).
		Suffix("RETURNING id, name, password_hash, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create user query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.User
	if err := q.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Name, &created.PasswordHash, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("user %q", u.Name))
	}

	return &created, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countUsersSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}
