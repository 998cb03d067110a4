package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fcz-stats/internal/domain/fixture"
	"github.com/riskibarqy/fcz-stats/internal/domain/snapshot"
	"github.com/riskibarqy/fcz-stats/internal/domain/standings"
	snapshotmock "github.com/riskibarqy/fcz-stats/internal/mocks/domain/snapshot"
	usecasemock "github.com/riskibarqy/fcz-stats/internal/mocks/usecase"
	"github.com/riskibarqy/fcz-stats/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, time.December, 1, 12, 0, 0, 0, time.UTC)

func testStatsConfig() StatsConfig {
	return StatsConfig{
		TeamID:            684,
		LeagueID:          207,
		TeamName:          "FC Zürich",
		LeagueName:        "Swiss Super League",
		RecentResultCount: 5,
	}
}

func testSampleDataset() Dataset {
	return Dataset{
		TeamName: "FC Zürich",
		League:   "Swiss Super League",
		Season:   "2024/25",
		Team: standings.Record{
			Rank: 5, TeamID: 684, TeamName: "FC Zürich",
			Played: 15, Won: 6, Drawn: 4, Lost: 5,
			GoalsFor: 22, GoalsAgainst: 18, GoalDifference: 4, Points: 22,
		},
		Source: SourceSample,
	}
}

func testLiveTable() standings.Table {
	return standings.Table{
		{Rank: 1, TeamID: 994, TeamName: "FC Lugano", Played: 15, Won: 10, Drawn: 3, Lost: 2, GoalsFor: 28, GoalsAgainst: 14, GoalDifference: 14, Points: 33},
		{Rank: 2, TeamID: 684, TeamName: "FC Zürich", Played: 15, Won: 9, Drawn: 3, Lost: 3, GoalsFor: 26, GoalsAgainst: 15, GoalDifference: 11, Points: 30},
	}
}

func newTestStatsService(provider FootballDataProvider, store *cache.Store, snapshots snapshot.Repository) *StatsService {
	service := NewStatsService(provider, testStatsConfig(), testSampleDataset(), store, snapshots, nil, nil)
	service.now = func() time.Time { return testNow }
	return service
}

func TestStatsService_Overview_NoKeyServesSample(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("HasKey").Return(false).Once()

	service := newTestStatsService(provider, nil, nil)

	got, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.Source != SourceSample {
		t.Fatalf("expected sample source, got %q", got.Source)
	}
	if got.Team.Rank != 5 || got.Team.Points != 22 {
		t.Fatalf("unexpected sample record: %+v", got.Team)
	}
	if got.FetchedAt != testNow {
		t.Fatalf("expected fetched_at stamped with now, got %v", got.FetchedAt)
	}
}

func TestStatsService_Overview_LiveSuccessStoresSnapshot(t *testing.T) {
	t.Parallel()

	nextMatch := fixture.Fixture{
		Date:     time.Date(2024, time.December, 7, 17, 30, 0, 0, time.UTC),
		HomeTeam: "FC Zürich",
		AwayTeam: "BSC Young Boys",
		Opponent: "BSC Young Boys",
		Venue:    "Letzigrund",
		IsHome:   true,
	}
	recent := []fixture.Result{
		{HomeTeam: "FC Zürich", AwayTeam: "FC Lugano", HomeScore: 1, AwayScore: 2, Outcome: fixture.OutcomeLoss, IsHome: true},
	}

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("HasKey").Return(true).Once()
	provider.On("Standings", mock.Anything, int64(207), 2024).Return(testLiveTable(), nil).Once()
	provider.On("NextFixture", mock.Anything, int64(684)).Return(nextMatch, true, nil).Once()
	provider.On("RecentResults", mock.Anything, int64(684), 5).Return(recent, nil).Once()

	snapshots := snapshotmock.NewRepository(t)
	snapshots.
		On("Save", mock.Anything, mock.MatchedBy(func(item snapshot.Snapshot) bool {
			return item.LeagueID == 207 && item.TeamID == 684 && item.Season == 2024 && item.ID != "" && item.PayloadJSON != ""
		})).
		Return(nil).
		Once()

	service := newTestStatsService(provider, nil, snapshots)

	got, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.Source != SourceLive {
		t.Fatalf("expected live source, got %q", got.Source)
	}
	if got.Team.Rank != 2 || got.Team.Points != 30 {
		t.Fatalf("unexpected team record: %+v", got.Team)
	}
	if got.Season != "2024/25" {
		t.Fatalf("unexpected season label: %q", got.Season)
	}
	if !got.HasNextMatch || got.NextMatch.Opponent != "BSC Young Boys" {
		t.Fatalf("unexpected next match: %+v", got.NextMatch)
	}
}

func TestStatsService_Overview_FetchErrorFallsBackToSnapshot(t *testing.T) {
	t.Parallel()

	stale := testSampleDataset()
	stale.Team.Rank = 3
	payload, err := snapshotJSON.MarshalToString(stale)
	if err != nil {
		t.Fatalf("marshal snapshot payload: %v", err)
	}

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("HasKey").Return(true).Once()
	provider.On("Standings", mock.Anything, int64(207), 2024).Return(nil, errors.New("provider status=500")).Once()
	provider.On("NextFixture", mock.Anything, int64(684)).Return(fixture.Fixture{}, false, nil).Maybe()
	provider.On("RecentResults", mock.Anything, int64(684), 5).Return(nil, nil).Maybe()

	snapshots := snapshotmock.NewRepository(t)
	snapshots.
		On("Latest", mock.Anything, int64(207), int64(684), 2024).
		Return(snapshot.Snapshot{ID: "snap-1", LeagueID: 207, TeamID: 684, Season: 2024, PayloadJSON: payload}, true, nil).
		Once()

	service := newTestStatsService(provider, nil, snapshots)

	got, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.Source != SourceSnapshot {
		t.Fatalf("expected snapshot source, got %q", got.Source)
	}
	if got.Team.Rank != 3 {
		t.Fatalf("expected snapshot record, got %+v", got.Team)
	}
}

func TestStatsService_Overview_FetchErrorWithoutSnapshotServesSample(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("HasKey").Return(true).Once()
	provider.On("Standings", mock.Anything, int64(207), 2024).Return(nil, errors.New("provider status=500")).Once()
	provider.On("NextFixture", mock.Anything, int64(684)).Return(fixture.Fixture{}, false, nil).Maybe()
	provider.On("RecentResults", mock.Anything, int64(684), 5).Return(nil, nil).Maybe()

	snapshots := snapshotmock.NewRepository(t)
	snapshots.
		On("Latest", mock.Anything, int64(207), int64(684), 2024).
		Return(snapshot.Snapshot{}, false, nil).
		Once()

	service := newTestStatsService(provider, nil, snapshots)

	got, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.Source != SourceSample {
		t.Fatalf("expected sample source, got %q", got.Source)
	}
}

func TestStatsService_Overview_TeamMissingFromStandingsServesSample(t *testing.T) {
	t.Parallel()

	table := standings.Table{
		{Rank: 1, TeamID: 994, TeamName: "FC Lugano", Points: 33},
	}

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("HasKey").Return(true).Once()
	provider.On("Standings", mock.Anything, int64(207), 2024).Return(table, nil).Once()
	provider.On("NextFixture", mock.Anything, int64(684)).Return(fixture.Fixture{}, false, nil).Once()
	provider.On("RecentResults", mock.Anything, int64(684), 5).Return(nil, nil).Once()

	service := newTestStatsService(provider, nil, nil)

	got, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if got.Source != SourceSample {
		t.Fatalf("expected sample fallback, got %q", got.Source)
	}
}

func TestStatsService_Refresh_RepopulatesCache(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("HasKey").Return(true).Once()
	provider.On("Standings", mock.Anything, int64(207), 2024).Return(testLiveTable(), nil).Once()
	provider.On("NextFixture", mock.Anything, int64(684)).Return(fixture.Fixture{}, false, nil).Once()
	provider.On("RecentResults", mock.Anything, int64(684), 5).Return(nil, nil).Once()

	service := newTestStatsService(provider, cache.NewStore(time.Minute), nil)

	refreshed := service.Refresh(context.Background())
	if refreshed.Source != SourceLive {
		t.Fatalf("expected live refresh, got %q", refreshed.Source)
	}

	// Every provider expectation is Once: a second load would fail the
	// mock, so this must come from cache.
	cached, err := service.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if cached.Source != SourceLive || cached.Team.Rank != refreshed.Team.Rank {
		t.Fatalf("expected cached live dataset, got %+v", cached)
	}
}
