package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// Publish marks a post as public and returns the updated record.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	public := domain.StatusPublic

	if err := s.posts.Update(ctx, id, domain.PostUpdateParams{Status: &public}); err != nil {
		return nil, err
	}

	updated, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}

	s.log.InfoContext(ctx, "post published", slog.String("post_id", id.String()))

	return updated, nil
}

// SetOfficial flips the official flag on a post and returns the updated
// record. Flagging a post official also publishes it in the same write,
// keeping the "official implies public" invariant intact. Clearing the
// flag leaves the status untouched.
func (s *Service) SetOfficial(ctx context.Context, id uuid.UUID, official bool) (*domain.Post, error) {
	params := domain.PostUpdateParams{Official: &official}
	if official {
		public := domain.StatusPublic
		params.Status = &public
	}

	if err := s.posts.Update(ctx, id, params); err != nil {
		return nil, err
	}

	updated, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload post: %w", err)
	}

	s.log.InfoContext(ctx, "post official flag set",
		slog.String("post_id", id.String()),
		slog.Bool("official", official),
	)

	return updated, nil
}
