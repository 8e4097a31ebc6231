package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// Create creates a new post. The slug is derived from the explicit Slug
// field when present, otherwise from the name, and is made unique by
// numeric suffix probing. Status, Official and Active may be set in the
// input; absent fields default to draft/false/true.
//
// IDs are version 7 UUIDs, so id order tracks creation order and the
// listing cursors (id > startingAfter, id < endingBefore) walk the
// newest-first listing instead of an arbitrary slice of the keyspace.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	source := input.Slug
	if strings.TrimSpace(source) == "" {
		source = name
	}

	slug, err := s.resolveUniqueSlug(ctx, domain.Slugify(source))
	if err != nil {
		return nil, err
	}

	status := domain.StatusDraft
	if input.Status != nil {
		status = *input.Status
	}
	official := false
	if input.Official != nil {
		official = *input.Official
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate post id: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.posts.Create(ctx, &domain.Post{
		ID:        id,
		Name:      name,
		Slug:      slug,
		Status:    status,
		Official:  official,
		Active:    active,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("post_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)

	return created, nil
}
