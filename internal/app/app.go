package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fcz-stats/external/apifootball"
	"github.com/riskibarqy/fcz-stats/internal/config"
	"github.com/riskibarqy/fcz-stats/internal/domain/snapshot"
	"github.com/riskibarqy/fcz-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fcz-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/fcz-stats/internal/platform/cache"
	idgen "github.com/riskibarqy/fcz-stats/internal/platform/id"
	"github.com/riskibarqy/fcz-stats/internal/platform/logging"
	"github.com/riskibarqy/fcz-stats/internal/platform/resilience"
	"github.com/riskibarqy/fcz-stats/internal/usecase"
)

// App bundles the HTTP server with the long-lived pieces main has to
// manage: the background refresher and the optional database handle.
type App struct {
	Server  *http.Server
	Refresh *usecase.RefreshService

	db *sqlx.DB
}

func New(cfg config.Config, logger *logging.Logger, requestLogger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if requestLogger == nil {
		requestLogger = slog.Default()
	}

	provider := apifootball.NewClient(apifootball.ClientConfig{
		HTTPClient: &http.Client{Timeout: cfg.FootballAPITimeout},
		BaseURL:    cfg.FootballAPIBaseURL,
		Key:        cfg.FootballAPIKey,
		Timeout:    cfg.FootballAPITimeout,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballCircuitEnabled,
			FailureThreshold: cfg.FootballCircuitFailures,
			OpenTimeout:      cfg.FootballCircuitOpenFor,
			HalfOpenMaxReq:   cfg.FootballCircuitHalfOpenReq,
		},
	})

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	var db *sqlx.DB
	var snapshots snapshot.Repository
	if cfg.DBEnabled {
		conn, err := openDB(cfg)
		if err != nil {
			return nil, err
		}
		db = conn
		snapshots = postgres.NewSnapshotRepository(conn)
	}

	statsSvc := usecase.NewStatsService(
		provider,
		usecase.StatsConfig{
			TeamID:            cfg.TeamID,
			LeagueID:          cfg.LeagueID,
			TeamName:          cfg.TeamName,
			LeagueName:        cfg.LeagueName,
			RecentResultCount: cfg.RecentResultCount,
		},
		apifootball.SampleDataset(),
		store,
		snapshots,
		idgen.NewRandomGenerator(),
		logger,
	)

	refreshSvc := usecase.NewRefreshService(statsSvc, usecase.RefreshConfig{
		Enabled:    cfg.RefreshEnabled,
		Interval:   cfg.RefreshInterval,
		MaxWorkers: cfg.RefreshMaxWorkers,
	}, logger)

	handler := httpapi.NewHandler(statsSvc, logger)
	router := httpapi.NewRouter(handler, requestLogger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return &App{
		Server:  server,
		Refresh: refreshSvc,
		db:      db,
	}, nil
}

// Close releases resources the app holds beyond the HTTP server.
func (a *App) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}
