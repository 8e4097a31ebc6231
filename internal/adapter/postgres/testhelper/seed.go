package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPost inserts a post with the given slug and returns the filled record.
// Name defaults to the slug; use SeedPostRecord for full control.
func SeedPost(t *testing.T, pool *pgxpool.Pool, slug string) domain.Post {
	t.Helper()

	return SeedPostRecord(t, pool, domain.Post{
		Name:   "Post " + uniqueSuffix(),
		Slug:   slug,
		Status: domain.StatusDraft,
		Active: true,
	})
}

// SeedPostRecord inserts the given post, filling in ID and timestamps when
// they are zero, and returns the stored record.
func SeedPostRecord(t *testing.T, pool *pgxpool.Pool, p domain.Post) domain.Post {
	t.Helper()
	ctx := context.Background()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO posts (id, name, slug, status, official, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Name, p.Slug, string(p.Status), p.Official, p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPostRecord insert: %v", err)
	}

	return p
}

// SeedUser creates a user with a random name and the given password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool, passwordHash string) domain.User {
	t.Helper()
	ctx := context.Background()

	user := domain.User{
		ID:           uuid.New(),
		Name:         "testuser-" + uniqueSuffix(),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}
