package post

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// Get returns a post by id.
// Returns domain.ErrNotFound if the post does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Find returns a post by id, or nil without error when it does not exist.
// Useful for callers that treat absence as a regular outcome.
func (s *Service) Find(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	return p, nil
}
