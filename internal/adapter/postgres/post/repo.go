// Package post implements the post record store using PostgreSQL.
// Dynamic listing and partial-update SQL is built with squirrel; slug
// uniqueness is backed by a UNIQUE index, so a lost slug race surfaces as
// domain.ErrAlreadyExists instead of a duplicate record.
package post

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/alpha-backend/internal/adapter/postgres"
	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// qb builds queries with PostgreSQL-style $N placeholders.
var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var postColumns = []string{"id", "name", "slug", "status", "official", "active", "created_at", "updated_at"}

const existsBySlugSQL = `SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1)`

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a post by primary key.
// Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	sql, args, err := qb.Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPost(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("post %s", id))
	}

	return p, nil
}

// List returns posts matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error) {
	sql, args, err := applyFilter(qb.Select(postColumns...).From("posts"), filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list posts query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []*domain.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return posts, nil
}

// ExistsBySlug reports whether any post carries the given slug.
func (r *Repo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsBySlugSQL, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by slug: %w", err)
	}

	return exists, nil
}

// Create inserts a new post and returns the persisted record.
// Returns domain.ErrAlreadyExists if the slug is already taken.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	sql, args, err := qb.Insert("posts").
		Columns(postColumns...).
		Values(p.ID, p.Name, p.Slug, p.Status.String(), p.Official, p.Active, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create post query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanPost(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, fmt.Sprintf("post %s", p.ID))
	}

	return created, nil
}

// Update applies a partial update. Only non-nil params are written.
// Returns domain.ErrNotFound if the post does not exist and
// domain.ErrAlreadyExists on a slug collision.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.PostUpdateParams) error {
	update := qb.Update("posts").
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id})

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Slug != nil {
		update = update.Set("slug", *params.Slug)
	}
	if params.Status != nil {
		update = update.Set("status", params.Status.String())
	}
	if params.Official != nil {
		update = update.Set("official", *params.Official)
	}
	if params.Active != nil {
		update = update.Set("active", *params.Active)
	}

	sql, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build update post query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, fmt.Sprintf("post %s", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a post.
// Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := qb.Delete("posts").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete post query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, fmt.Sprintf("post %s", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		p      domain.Post
		status string
	)

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&status,
		&p.Official,
		&p.Active,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = domain.PostStatus(status)
	return &p, nil
}

func columnList() string {
	out := postColumns[0]
	for _, c := range postColumns[1:] {
		out += ", " + c
	}
	return out
}
