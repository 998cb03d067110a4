package usecase

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/fcz-stats/internal/domain/fixture"
	"github.com/riskibarqy/fcz-stats/internal/domain/snapshot"
	"github.com/riskibarqy/fcz-stats/internal/domain/standings"
	"github.com/riskibarqy/fcz-stats/internal/platform/cache"
	idgen "github.com/riskibarqy/fcz-stats/internal/platform/id"
	"github.com/riskibarqy/fcz-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const overviewCacheKey = "stats:overview"

var snapshotJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// FootballDataProvider is the outbound port to the live data source.
// Every method is a single best-effort attempt.
type FootballDataProvider interface {
	HasKey() bool
	Standings(ctx context.Context, leagueID int64, season int) (standings.Table, error)
	NextFixture(ctx context.Context, teamID int64) (fixture.Fixture, bool, error)
	RecentResults(ctx context.Context, teamID int64, last int) ([]fixture.Result, error)
}

type StatsConfig struct {
	TeamID            int64
	LeagueID          int64
	TeamName          string
	LeagueName        string
	RecentResultCount int
}

// StatsService assembles the dashboard dataset. The page must always
// render: any failure along the live path degrades to the latest
// snapshot (when persistence is enabled) and finally to the static
// sample, never to an error.
type StatsService struct {
	provider  FootballDataProvider
	cfg       StatsConfig
	sample    Dataset
	cache     *cache.Store
	snapshots snapshot.Repository
	ids       idgen.Generator
	logger    *logging.Logger
	now       func() time.Time
}

func NewStatsService(
	provider FootballDataProvider,
	cfg StatsConfig,
	sample Dataset,
	store *cache.Store,
	snapshots snapshot.Repository,
	ids idgen.Generator,
	logger *logging.Logger,
) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.RecentResultCount <= 0 {
		cfg.RecentResultCount = 5
	}
	if ids == nil {
		ids = idgen.NewRandomGenerator()
	}

	return &StatsService{
		provider:  provider,
		cfg:       cfg,
		sample:    sample,
		cache:     store,
		snapshots: snapshots,
		ids:       ids,
		logger:    logger,
		now:       time.Now,
	}
}

// Overview returns the current dataset, served from cache when one is
// configured.
func (s *StatsService) Overview(ctx context.Context) (Dataset, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Overview")
	defer span.End()

	if s.cache == nil {
		return s.load(ctx), nil
	}

	value, err := s.cache.GetOrLoad(ctx, overviewCacheKey, func(ctx context.Context) (any, error) {
		return s.load(ctx), nil
	})
	if err != nil {
		return Dataset{}, fmt.Errorf("load overview: %w", err)
	}

	dataset, ok := value.(Dataset)
	if !ok {
		return Dataset{}, fmt.Errorf("unexpected cached overview type %T", value)
	}
	return dataset, nil
}

// Refresh rebuilds the dataset, bypassing and repopulating the cache.
func (s *StatsService) Refresh(ctx context.Context) Dataset {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Refresh")
	defer span.End()

	dataset := s.load(ctx)
	if s.cache != nil {
		s.cache.Set(ctx, overviewCacheKey, dataset)
	}
	return dataset
}

func (s *StatsService) load(ctx context.Context) Dataset {
	now := s.now().UTC()
	season := CurrentSeason(now)

	if s.provider == nil || !s.provider.HasKey() {
		s.logger.WarnContext(ctx, "no football api key configured, serving sample data")
		return s.sampleDataset(now)
	}

	live, err := s.fetchLive(ctx, season, now)
	if err != nil {
		s.logger.WarnContext(ctx, "live fetch failed, serving fallback data",
			"league_id", s.cfg.LeagueID,
			"team_id", s.cfg.TeamID,
			"season", season,
			"error", err,
		)
		if stale, ok := s.latestSnapshot(ctx, season); ok {
			return stale
		}
		return s.sampleDataset(now)
	}

	s.storeSnapshot(ctx, live, season)
	return live
}

// fetchLive issues the three provider calls concurrently. The unit of
// work is one combined fetch: any failure fails the whole fetch and the
// caller falls back.
func (s *StatsService) fetchLive(ctx context.Context, season int, now time.Time) (Dataset, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.fetchLive")
	defer span.End()

	var (
		table   standings.Table
		next    fixture.Fixture
		hasNext bool
		recent  []fixture.Result
	)

	group := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	group.Go(func(ctx context.Context) error {
		fetched, err := s.provider.Standings(ctx, s.cfg.LeagueID, season)
		if err != nil {
			return fmt.Errorf("standings: %w", err)
		}
		table = fetched
		return nil
	})
	group.Go(func(ctx context.Context) error {
		fetched, ok, err := s.provider.NextFixture(ctx, s.cfg.TeamID)
		if err != nil {
			return fmt.Errorf("next fixture: %w", err)
		}
		next = fetched
		hasNext = ok
		return nil
	})
	group.Go(func(ctx context.Context) error {
		fetched, err := s.provider.RecentResults(ctx, s.cfg.TeamID, s.cfg.RecentResultCount)
		if err != nil {
			return fmt.Errorf("recent results: %w", err)
		}
		recent = fetched
		return nil
	})
	if err := group.Wait(); err != nil {
		return Dataset{}, err
	}

	record, ok := table.TeamRecord(s.cfg.TeamID)
	if !ok {
		return Dataset{}, fmt.Errorf("%w: team %d missing from standings", ErrNotFound, s.cfg.TeamID)
	}

	return Dataset{
		TeamName:      s.cfg.TeamName,
		League:        s.cfg.LeagueName,
		Season:        FormatSeason(season),
		Team:          record,
		Table:         table,
		NextMatch:     next,
		HasNextMatch:  hasNext,
		RecentResults: recent,
		Source:        SourceLive,
		FetchedAt:     now,
	}, nil
}

func (s *StatsService) sampleDataset(now time.Time) Dataset {
	out := s.sample
	out.Source = SourceSample
	out.FetchedAt = now
	return out
}

func (s *StatsService) latestSnapshot(ctx context.Context, season int) (Dataset, bool) {
	if s.snapshots == nil {
		return Dataset{}, false
	}

	item, found, err := s.snapshots.Latest(ctx, s.cfg.LeagueID, s.cfg.TeamID, season)
	if err != nil {
		s.logger.WarnContext(ctx, "load latest snapshot failed", "error", err)
		return Dataset{}, false
	}
	if !found {
		return Dataset{}, false
	}

	var dataset Dataset
	if err := snapshotJSON.UnmarshalFromString(item.PayloadJSON, &dataset); err != nil {
		s.logger.WarnContext(ctx, "decode snapshot payload failed", "snapshot_id", item.ID, "error", err)
		return Dataset{}, false
	}

	dataset.Source = SourceSnapshot
	return dataset, true
}

func (s *StatsService) storeSnapshot(ctx context.Context, dataset Dataset, season int) {
	if s.snapshots == nil {
		return
	}

	payload, err := snapshotJSON.MarshalToString(dataset)
	if err != nil {
		s.logger.WarnContext(ctx, "encode snapshot payload failed", "error", err)
		return
	}

	id, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate snapshot id failed", "error", err)
		return
	}

	item := snapshot.Snapshot{
		ID:          id,
		LeagueID:    s.cfg.LeagueID,
		TeamID:      s.cfg.TeamID,
		Season:      season,
		PayloadJSON: payload,
		FetchedAt:   dataset.FetchedAt,
	}
	if err := s.snapshots.Save(ctx, item); err != nil {
		s.logger.WarnContext(ctx, "save snapshot failed", "snapshot_id", id, "error", err)
	}
}
