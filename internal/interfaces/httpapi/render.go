package httpapi

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/riskibarqy/fcz-stats/internal/domain/fixture"
	"github.com/riskibarqy/fcz-stats/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

type dashboardView struct {
	TeamName      string
	League        string
	Season        string
	Team          dashboardRecordView
	Table         []dashboardTableRowView
	HasNextMatch  bool
	NextMatch     dashboardFixtureView
	RecentMatches []dashboardResultView
	Source        string
	FetchedAt     string
}

type dashboardRecordView struct {
	Rank           int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference string
	Points         int
}

type dashboardTableRowView struct {
	Rank           int
	TeamName       string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference string
	Points         int
	Highlight      bool
}

type dashboardFixtureView struct {
	HomeTeam string
	AwayTeam string
	Kickoff  string
	Venue    string
	HomeAway string
}

type dashboardResultView struct {
	Date     string
	Opponent string
	Score    string
	Outcome  string
}

// renderDashboard executes the page template into a pooled buffer so a
// template error never leaves a half-written response body.
func renderDashboard(w io.Writer, dataset usecase.Dataset) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := dashboardTemplate.Execute(buf, newDashboardView(dataset)); err != nil {
		return fmt.Errorf("execute dashboard template: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write dashboard response: %w", err)
	}
	return nil
}

func newDashboardView(dataset usecase.Dataset) dashboardView {
	view := dashboardView{
		TeamName: dataset.TeamName,
		League:   dataset.League,
		Season:   dataset.Season,
		Team: dashboardRecordView{
			Rank:           dataset.Team.Rank,
			Played:         dataset.Team.Played,
			Won:            dataset.Team.Won,
			Drawn:          dataset.Team.Drawn,
			Lost:           dataset.Team.Lost,
			GoalsFor:       dataset.Team.GoalsFor,
			GoalsAgainst:   dataset.Team.GoalsAgainst,
			GoalDifference: formatSigned(dataset.Team.GoalDifference),
			Points:         dataset.Team.Points,
		},
		HasNextMatch: dataset.HasNextMatch,
		Source:       dataset.Source,
		FetchedAt:    formatDisplayTime(dataset.FetchedAt),
	}

	view.Table = make([]dashboardTableRowView, 0, len(dataset.Table))
	for _, row := range dataset.Table {
		view.Table = append(view.Table, dashboardTableRowView{
			Rank:           row.Rank,
			TeamName:       row.TeamName,
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: formatSigned(row.GoalDifference),
			Points:         row.Points,
			Highlight:      row.TeamID == dataset.Team.TeamID,
		})
	}

	if dataset.HasNextMatch {
		homeAway := "Away"
		if dataset.NextMatch.IsHome {
			homeAway = "Home"
		}
		view.NextMatch = dashboardFixtureView{
			HomeTeam: dataset.NextMatch.HomeTeam,
			AwayTeam: dataset.NextMatch.AwayTeam,
			Kickoff:  formatDisplayTime(dataset.NextMatch.Date),
			Venue:    dataset.NextMatch.Venue,
			HomeAway: homeAway,
		}
	}

	view.RecentMatches = make([]dashboardResultView, 0, len(dataset.RecentResults))
	for _, item := range dataset.RecentResults {
		view.RecentMatches = append(view.RecentMatches, dashboardResultView{
			Date:     formatDisplayDate(item.Date),
			Opponent: opponentName(item, dataset.TeamName),
			Score:    fmt.Sprintf("%d - %d", item.HomeScore, item.AwayScore),
			Outcome:  string(item.Outcome),
		})
	}

	return view
}

func opponentName(item fixture.Result, teamName string) string {
	if item.HomeTeam == teamName {
		return item.AwayTeam
	}
	return item.HomeTeam
}

func formatSigned(v int) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

func formatDisplayTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format("Mon 2 Jan 2006, 15:04 MST")
}

func formatDisplayDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format("2 Jan 2006")
}
