package standings

// Record is one team's season line in the league table.
type Record struct {
	Rank           int
	TeamID         int64
	TeamName       string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// Table is a full league table ordered by rank ascending.
type Table []Record

// TeamRecord returns the row for the given team id.
func (t Table) TeamRecord(teamID int64) (Record, bool) {
	for _, row := range t {
		if row.TeamID == teamID {
			return row, true
		}
	}
	return Record{}, false
}

// Top returns at most limit rows from the head of the table.
func (t Table) Top(limit int) Table {
	if limit <= 0 || limit >= len(t) {
		return t
	}
	return t[:limit]
}
