package post

import (
	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// applyFilter translates a parsed domain.PostFilter into WHERE clauses plus
// the fixed sort order and limit. The filter arrives fully coerced: the
// service layer owns defaulting, limit clamping, and the official→status
// override, so every field here maps one-to-one onto a condition.
//
// Cursor delimiters compare against the id column; the filter builder never
// sets both, but when handed both the forward cursor wins.
func applyFilter(query squirrel.SelectBuilder, f domain.PostFilter) squirrel.SelectBuilder {
	query = query.Where(squirrel.Eq{"active": f.Active})

	if f.StartingAfter != nil {
		query = query.Where(squirrel.Gt{"id": *f.StartingAfter})
	} else if f.EndingBefore != nil {
		query = query.Where(squirrel.Lt{"id": *f.EndingBefore})
	}

	if f.Official != nil {
		query = query.Where(squirrel.Eq{"official": *f.Official})
	}
	if f.Status != nil {
		query = query.Where(squirrel.Eq{"status": f.Status.String()})
	}

	return query.
		OrderBy("created_at DESC").
		Limit(uint64(f.Limit))
}
