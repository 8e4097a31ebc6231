// Package post implements the post management use cases: creation with
// unique slug resolution, filtered listing, partial updates, publishing
// and the official flag lifecycle.
package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

const (
	// DefaultLimit is applied when the limit parameter is missing or unusable.
	DefaultLimit = 10
	// MaxLimit caps a single listing page. Larger requests fall back to DefaultLimit.
	MaxLimit = 100
)

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	List(ctx context.Context, filter domain.PostFilter) ([]*domain.Post, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PostUpdateParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides post management operations.
type Service struct {
	posts postRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Post service.
func NewService(
	log *slog.Logger,
	posts postRepo,
	tx txManager,
) *Service {
	return &Service{
		posts: posts,
		tx:    tx,
		log:   log.With("service", "post"),
	}
}
