package snapshot

import "context"

type Repository interface {
	Save(ctx context.Context, item Snapshot) error
	Latest(ctx context.Context, leagueID, teamID int64, season int) (Snapshot, bool, error)
}
