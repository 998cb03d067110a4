package postgres

import "time"

type statsSnapshotTableModel struct {
	ID          string     `db:"id"`
	LeagueID    int64      `db:"league_id"`
	TeamID      int64      `db:"team_id"`
	Season      int        `db:"season"`
	PayloadJSON string     `db:"payload_json"`
	FetchedAt   time.Time  `db:"fetched_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type statsSnapshotInsertModel struct {
	ID          string    `db:"id"`
	LeagueID    int64     `db:"league_id"`
	TeamID      int64     `db:"team_id"`
	Season      int       `db:"season"`
	PayloadJSON string    `db:"payload_json"`
	FetchedAt   time.Time `db:"fetched_at"`
}
