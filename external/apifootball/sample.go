package apifootball

import (
	"time"

	"github.com/riskibarqy/fcz-stats/internal/usecase"
)

const (
	sampleTeamID     = 684
	sampleTeamName   = "FC Zürich"
	sampleLeagueName = "Swiss Super League"
	sampleSeason     = "2024/25"
)

// sampleStandingsRows mirrors the provider wire shape so the static
// dataset flows through the exact same shaping code as a live response.
var sampleStandingsRows = []map[string]any{
	sampleStandingsRow(1, 994, "FC Lugano", 15, 10, 3, 2, 28, 12, 33),
	sampleStandingsRow(2, 551, "FC Basel 1893", 15, 9, 4, 2, 30, 15, 31),
	sampleStandingsRow(3, 648, "Servette FC", 15, 8, 4, 3, 24, 14, 28),
	sampleStandingsRow(4, 565, "BSC Young Boys", 15, 7, 5, 3, 25, 16, 26),
	sampleStandingsRow(5, 684, "FC Zürich", 15, 6, 4, 5, 22, 18, 22),
	sampleStandingsRow(6, 658, "FC St. Gallen", 15, 5, 5, 5, 20, 20, 20),
	sampleStandingsRow(7, 654, "FC Luzern", 15, 5, 4, 6, 18, 22, 19),
	sampleStandingsRow(8, 650, "FC Sion", 15, 4, 5, 6, 16, 21, 17),
	sampleStandingsRow(9, 1011, "Grasshopper Club", 15, 3, 4, 8, 14, 25, 13),
	sampleStandingsRow(10, 1013, "FC Winterthur", 15, 2, 4, 9, 12, 28, 10),
}

var sampleNextFixtureRow = sampleFixtureRow(
	"2024-12-07T17:30:00Z", "Letzigrund",
	684, "FC Zürich", 565, "BSC Young Boys",
	-1, -1,
)

var sampleResultRows = []map[string]any{
	sampleFixtureRow("2024-11-23T17:30:00Z", "Cornaredo", 994, "FC Lugano", 684, "FC Zürich", 2, 1),
	sampleFixtureRow("2024-11-09T17:30:00Z", "Letzigrund", 684, "FC Zürich", 658, "FC St. Gallen", 3, 1),
	sampleFixtureRow("2024-11-02T19:30:00Z", "Stade de Genève", 648, "Servette FC", 684, "FC Zürich", 1, 1),
	sampleFixtureRow("2024-10-26T17:30:00Z", "Letzigrund", 684, "FC Zürich", 650, "FC Sion", 2, 0),
	sampleFixtureRow("2024-10-19T17:30:00Z", "St. Jakob-Park", 551, "FC Basel 1893", 684, "FC Zürich", 1, 0),
}

// SampleDataset returns the fixed dataset served when no API key is
// configured or every other source has failed. Shaped once at startup,
// then copied per use by the caller.
func SampleDataset() usecase.Dataset {
	table := ShapeStandings(sampleStandingsRows)
	record, _ := table.TeamRecord(sampleTeamID)
	next, hasNext := ShapeFixture(sampleNextFixtureRow, sampleTeamID)
	recent := ShapeResults(sampleResultRows, sampleTeamID)

	return usecase.Dataset{
		TeamName:      sampleTeamName,
		League:        sampleLeagueName,
		Season:        sampleSeason,
		Team:          record,
		Table:         table,
		NextMatch:     next,
		HasNextMatch:  hasNext,
		RecentResults: recent,
		Source:        usecase.SourceSample,
		FetchedAt:     time.Time{},
	}
}

func sampleStandingsRow(rank, teamID int, name string, played, won, drawn, lost, goalsFor, goalsAgainst, points int) map[string]any {
	return map[string]any{
		"rank":      rank,
		"team":      map[string]any{"id": teamID, "name": name},
		"points":    points,
		"goalsDiff": goalsFor - goalsAgainst,
		"all": map[string]any{
			"played": played,
			"win":    won,
			"draw":   drawn,
			"lose":   lost,
			"goals":  map[string]any{"for": goalsFor, "against": goalsAgainst},
		},
	}
}

func sampleFixtureRow(date, venue string, homeID int, homeName string, awayID int, awayName string, homeGoals, awayGoals int) map[string]any {
	row := map[string]any{
		"fixture": map[string]any{
			"date":  date,
			"venue": map[string]any{"name": venue},
		},
		"teams": map[string]any{
			"home": map[string]any{"id": homeID, "name": homeName},
			"away": map[string]any{"id": awayID, "name": awayName},
		},
		"league": map[string]any{"name": sampleLeagueName},
	}
	if homeGoals >= 0 && awayGoals >= 0 {
		row["goals"] = map[string]any{"home": homeGoals, "away": awayGoals}
	}
	return row
}
