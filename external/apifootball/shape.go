package apifootball

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fcz-stats/internal/domain/fixture"
	"github.com/riskibarqy/fcz-stats/internal/domain/standings"
)

// maxTableRows caps the shaped league table for display.
const maxTableRows = 10

// ShapeStandings flattens provider standings rows into a league table.
// Rows that cannot be coerced (no rank or no team id) are dropped. The
// provider's rank order is preserved; the stable sort only repairs
// payloads that arrive out of order.
func ShapeStandings(rows []map[string]any) standings.Table {
	out := make(standings.Table, 0, len(rows))
	for _, row := range rows {
		team := childMap(row, "team")
		all := childMap(row, "all")
		goals := childMap(all, "goals")

		record := standings.Record{
			Rank:           getInt(row, "rank"),
			TeamID:         getInt64(team, "id"),
			TeamName:       getString(team, "name"),
			Played:         getInt(all, "played"),
			Won:            getInt(all, "win"),
			Drawn:          getInt(all, "draw"),
			Lost:           getInt(all, "lose"),
			GoalsFor:       getIntAny(goals, "for", "goals_for"),
			GoalsAgainst:   getIntAny(goals, "against", "goals_against"),
			GoalDifference: getInt(row, "goalsDiff"),
			Points:         getInt(row, "points"),
		}
		if record.Rank <= 0 || record.TeamID <= 0 {
			continue
		}
		if record.GoalDifference == 0 && (record.GoalsFor != 0 || record.GoalsAgainst != 0) {
			record.GoalDifference = record.GoalsFor - record.GoalsAgainst
		}
		// Points are derived only when the provider omits them; a
		// present value is authoritative even when negative (deductions).
		if raw, present := row["points"]; !present || raw == nil {
			record.Points = 3*record.Won + record.Drawn
		}
		out = append(out, record)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].TeamID < out[j].TeamID
	})

	if len(out) > maxTableRows {
		out = out[:maxTableRows]
	}
	return out
}

// ShapeFixture flattens one provider fixture row into the tracked team's
// view of the match. Returns false when the row has no usable teams.
func ShapeFixture(row map[string]any, teamID int64) (fixture.Fixture, bool) {
	fixtureObj := childMap(row, "fixture")
	teams := childMap(row, "teams")
	home := childMap(teams, "home")
	away := childMap(teams, "away")

	homeName := getString(home, "name")
	awayName := getString(away, "name")
	if homeName == "" && awayName == "" {
		return fixture.Fixture{}, false
	}

	isHome := getInt64(home, "id") == teamID
	opponent := homeName
	if isHome {
		opponent = awayName
	}

	out := fixture.Fixture{
		HomeTeam: homeName,
		AwayTeam: awayName,
		Opponent: opponent,
		Venue:    getString(childMap(fixtureObj, "venue"), "name"),
		IsHome:   isHome,
	}
	if parsed := parseProviderDate(getString(fixtureObj, "date")); parsed != nil {
		out.Date = *parsed
	}
	return out, true
}

// ShapeResults flattens finished fixtures into results with a W/L/D
// outcome derived by comparing the tracked team id against the sides.
func ShapeResults(rows []map[string]any, teamID int64) []fixture.Result {
	out := make([]fixture.Result, 0, len(rows))
	for _, row := range rows {
		result, ok := shapeResult(row, teamID)
		if !ok {
			continue
		}
		out = append(out, result)
	}
	return out
}

func shapeResult(row map[string]any, teamID int64) (fixture.Result, bool) {
	shaped, ok := ShapeFixture(row, teamID)
	if !ok {
		return fixture.Result{}, false
	}

	goals := childMap(row, "goals")
	homeScore := getInt(goals, "home")
	awayScore := getInt(goals, "away")

	teamScore, oppScore := homeScore, awayScore
	if !shaped.IsHome {
		teamScore, oppScore = awayScore, homeScore
	}

	outcome := fixture.OutcomeDraw
	switch {
	case teamScore > oppScore:
		outcome = fixture.OutcomeWin
	case teamScore < oppScore:
		outcome = fixture.OutcomeLoss
	}

	return fixture.Result{
		Date:      shaped.Date,
		HomeTeam:  shaped.HomeTeam,
		AwayTeam:  shaped.AwayTeam,
		HomeScore: homeScore,
		AwayScore: awayScore,
		Outcome:   outcome,
		IsHome:    shaped.IsHome,
	}, true
}

func childMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	obj, ok := src[key].(map[string]any)
	if !ok {
		return nil
	}
	return obj
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	raw, ok := src[key]
	if !ok || raw == nil {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func getInt(src map[string]any, key string) int {
	return int(getInt64(src, key))
}

func getIntAny(src map[string]any, keys ...string) int {
	for _, key := range keys {
		value := getInt(src, key)
		if value != 0 {
			return value
		}
	}
	return 0
}

func getInt64(src map[string]any, key string) int64 {
	if src == nil {
		return 0
	}
	raw, ok := src[key]
	if !ok || raw == nil {
		return 0
	}
	switch typed := raw.(type) {
	case float64:
		return int64(typed)
	case float32:
		return int64(typed)
	case int:
		return int64(typed)
	case int64:
		return typed
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0
		}
		return v
	default:
		return 0
	}
}

func parseProviderDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-07:00", "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			utc := parsed.UTC()
			return &utc
		}
	}
	return nil
}
