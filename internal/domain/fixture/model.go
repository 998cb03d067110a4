package fixture

import "time"

// Fixture is a scheduled match from the tracked team's point of view.
type Fixture struct {
	Date     time.Time
	HomeTeam string
	AwayTeam string
	Opponent string
	Venue    string
	IsHome   bool
}

// Outcome of a finished match for the tracked team.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeLoss Outcome = "L"
	OutcomeDraw Outcome = "D"
)

// Result is a finished match with its score and outcome.
type Result struct {
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	Outcome   Outcome
	IsHome    bool
}
