package team

import "context"

// Directory resolves team identifiers to Team records.
type Directory interface {
	Find(ctx context.Context, id int64) (Team, error)
}
