package post

import (
	"context"
	"fmt"
)

// resolveUniqueSlug probes the store for the first free variant of slug.
// An empty slug is returned as-is without touching the store.
// The base slug is tried as-is, then "slug-1", "slug-2" and so on until a
// free one is found. The loop is bounded only by existing records, so it
// terminates as soon as a gap in the numbered sequence appears.
//
// Uniqueness is ultimately enforced by the store's unique index; a
// concurrent writer grabbing the probed slug surfaces as
// domain.ErrAlreadyExists from the subsequent insert or update.
func (s *Service) resolveUniqueSlug(ctx context.Context, slug string) (string, error) {
	if slug == "" {
		return "", nil
	}

	candidate := slug
	for n := 1; ; n++ {
		exists, err := s.posts.ExistsBySlug(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, n)
	}
}
