package post

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// List returns posts matching the raw listing parameters, newest first.
// Malformed parameters never fail the request: they fall back to defaults
// (active true, limit 10) or are dropped from the filter entirely.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx, buildFilter(input))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// buildFilter coerces raw query strings into a store filter.
//
// Coercion rules:
//   - active: lenient boolean, anything except "0" and "false" reads as
//     true; missing defaults to true.
//   - official: included only when the value is a strict boolean literal
//     ("true", "false", "1", "0"). official=true additionally forces
//     status=public, overriding any explicit status parameter.
//   - status: included only when the value is a known status.
//   - cursors: startingAfter takes the cursor slot whenever present,
//     endingBefore applies only in its absence; values that do not parse
//     as UUIDs are dropped silently.
//   - limit: defaults to 10 when missing, non-numeric, non-positive or
//     above 100.
func buildFilter(input ListInput) domain.PostFilter {
	filter := domain.PostFilter{
		Active: true,
		Limit:  DefaultLimit,
	}

	if input.Active != "" {
		filter.Active = input.Active != "0" && input.Active != "false"
	}

	if st := domain.PostStatus(input.Status); st.IsValid() {
		filter.Status = &st
	}

	if official, ok := parseBoolLiteral(input.Official); ok {
		filter.Official = &official
		if official {
			// Official posts are public by invariant, so an official-only
			// listing always pins status to public.
			public := domain.StatusPublic
			filter.Status = &public
		}
	}

	if input.StartingAfter != "" {
		if id, err := uuid.Parse(input.StartingAfter); err == nil {
			filter.StartingAfter = &id
		}
	} else if input.EndingBefore != "" {
		if id, err := uuid.Parse(input.EndingBefore); err == nil {
			filter.EndingBefore = &id
		}
	}

	if n, err := strconv.Atoi(input.Limit); err == nil && n > 0 && n <= MaxLimit {
		filter.Limit = n
	}

	return filter
}

// parseBoolLiteral accepts only the strict boolean literals "true", "false",
// "1" and "0". Anything else reports ok=false.
func parseBoolLiteral(s string) (value, ok bool) {
	switch s {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}
