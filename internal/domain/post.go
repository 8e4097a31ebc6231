package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a publishable content record.
// Slug is unique across all posts (enforced by a UNIQUE index in the store).
type Post struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Status    PostStatus
	Official  bool
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostUpdateParams describes a partial update of a post.
// nil fields are left untouched.
type PostUpdateParams struct {
	Name     *string
	Slug     *string
	Status   *PostStatus
	Official *bool
	Active   *bool
}

// IsEmpty reports whether no field is set.
func (p PostUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Slug == nil && p.Status == nil &&
		p.Official == nil && p.Active == nil
}
