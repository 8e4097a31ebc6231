package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// Update applies a partial update to a post.
//
// Fields equal to their stored values are dropped before writing: a name
// matching the current name and a slug normalizing to the current slug
// are no-ops. A changed slug is re-resolved for uniqueness. When every
// requested field is dropped this way the stored post is returned without
// touching the store at all.
//
// An update with no fields at all is rejected with a validation error
// before the post is even looked up.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params domain.PostUpdateParams) (*domain.Post, error) {
	if params.IsEmpty() {
		return nil, domain.NewValidationError("post", "no fields to update")
	}

	if err := validateUpdateParams(params); err != nil {
		return nil, err
	}

	var result *domain.Post

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.posts.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if params.Name != nil {
			name := strings.TrimSpace(*params.Name)
			if name == existing.Name {
				params.Name = nil
			} else {
				params.Name = &name
			}
		}

		if params.Slug != nil {
			slug := domain.Slugify(*params.Slug)
			if slug == existing.Slug {
				params.Slug = nil
			} else {
				resolved, err := s.resolveUniqueSlug(ctx, slug)
				if err != nil {
					return err
				}
				params.Slug = &resolved
			}
		}

		if params.IsEmpty() {
			result = existing
			return nil
		}

		if err := s.posts.Update(ctx, id, params); err != nil {
			return fmt.Errorf("update post: %w", err)
		}

		result, err = s.posts.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "post updated", slog.String("post_id", id.String()))

	return result, nil
}

func validateUpdateParams(params domain.PostUpdateParams) error {
	var errs []domain.FieldError

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}

	if params.Slug != nil && domain.Slugify(*params.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}

	if params.Status != nil && !params.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: draft, public, private"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
