package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Delete permanently removes a post.
// Returns domain.ErrNotFound if the post does not exist.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "post deleted", slog.String("post_id", id.String()))

	return nil
}
