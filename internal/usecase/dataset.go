package usecase

import (
	"time"

	"github.com/riskibarqy/fcz-stats/internal/domain/fixture"
	"github.com/riskibarqy/fcz-stats/internal/domain/standings"
)

const (
	SourceLive     = "live"
	SourceSnapshot = "snapshot"
	SourceSample   = "sample"
)

// Dataset is the complete shaped view served to the dashboard: the
// tracked team's season record, the league table, the next fixture and
// the most recent results. It is rebuilt per request from live data, a
// persisted snapshot or the static sample.
type Dataset struct {
	TeamName      string           `json:"team_name"`
	League        string           `json:"league"`
	Season        string           `json:"season"`
	Team          standings.Record `json:"team_record"`
	Table         standings.Table  `json:"standings"`
	NextMatch     fixture.Fixture  `json:"next_match"`
	HasNextMatch  bool             `json:"has_next_match"`
	RecentResults []fixture.Result `json:"recent_matches"`
	Source        string           `json:"source"`
	FetchedAt     time.Time        `json:"fetched_at"`
}
