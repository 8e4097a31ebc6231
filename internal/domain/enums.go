package domain

// PostStatus represents the lifecycle state of a post.
// Official posts are always forced to StatusPublic when flagged.
type PostStatus string

const (
	StatusDraft   PostStatus = "draft"
	StatusPublic  PostStatus = "public"
	StatusPrivate PostStatus = "private"
)

func (s PostStatus) String() string { return string(s) }

func (s PostStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublic, StatusPrivate:
		return true
	}
	return false
}
