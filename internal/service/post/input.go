package post

import (
	"strings"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// CreateInput holds the parameters for creating a post.
// Slug is optional; when empty the slug is derived from Name. Status,
// Official and Active are optional and fall back to draft/false/true.
type CreateInput struct {
	Name     string
	Slug     string
	Status   *domain.PostStatus
	Official *bool
	Active   *bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: draft, public, private"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput carries the raw query parameters of a listing request.
// Every field is a string exactly as received; coercion, defaulting and
// clamping happen in buildFilter, never in the transport layer.
type ListInput struct {
	Active        string
	Official      string
	Status        string
	StartingAfter string
	EndingBefore  string
	Limit         string
}
