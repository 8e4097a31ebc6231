package domain

import "github.com/google/uuid"

// PostFilter contains the parsed, validated listing parameters for posts.
// It is produced from raw query strings by the post service; by the time a
// filter reaches the store every field is already coerced and defaulted.
//
// StartingAfter and EndingBefore are cursor delimiters compared against the
// record id. The builder guarantees at most one of them is set
// (StartingAfter wins when both are supplied).
type PostFilter struct {
	Active        bool
	Official      *bool
	Status        *PostStatus
	StartingAfter *uuid.UUID
	EndingBefore  *uuid.UUID
	Limit         int
}
