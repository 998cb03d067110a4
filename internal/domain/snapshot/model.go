package snapshot

import "time"

// Snapshot is a persisted copy of the last successfully shaped dataset.
// It is served in place of the static sample when a live fetch fails.
type Snapshot struct {
	ID          string
	LeagueID    int64
	TeamID      int64
	Season      int
	PayloadJSON string
	FetchedAt   time.Time
}
