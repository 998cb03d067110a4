package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TeamID != 684 {
		t.Fatalf("unexpected default team id: %d", cfg.TeamID)
	}
	if cfg.LeagueID != 207 {
		t.Fatalf("unexpected default league id: %d", cfg.LeagueID)
	}
	if cfg.TeamName != "FC Zürich" {
		t.Fatalf("unexpected default team name: %q", cfg.TeamName)
	}
	if cfg.FootballAPIBaseURL != "https://v3.football.api-sports.io" {
		t.Fatalf("unexpected default base url: %q", cfg.FootballAPIBaseURL)
	}
	if cfg.FootballAPIKey != "" {
		t.Fatalf("expected empty api key by default")
	}
	if cfg.RecentResultCount != 5 {
		t.Fatalf("unexpected default recent result count: %d", cfg.RecentResultCount)
	}
	if cfg.DBEnabled {
		t.Fatalf("expected DBEnabled=false by default")
	}
	if cfg.RefreshEnabled {
		t.Fatalf("expected RefreshEnabled=false by default")
	}
	if cfg.RefreshInterval != 5*time.Minute {
		t.Fatalf("unexpected default refresh interval: %s", cfg.RefreshInterval)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_FootballAPIConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("FOOTBALL_API_KEY", "  api-key-123  ")
		t.Setenv("FOOTBALL_API_TIMEOUT", "3s")
		t.Setenv("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", "7")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.FootballAPIKey != "api-key-123" {
			t.Fatalf("unexpected api key: %q", cfg.FootballAPIKey)
		}
		if cfg.FootballAPITimeout != 3*time.Second {
			t.Fatalf("unexpected timeout: %s", cfg.FootballAPITimeout)
		}
		if cfg.FootballCircuitFailures != 7 {
			t.Fatalf("unexpected circuit failure count: %d", cfg.FootballCircuitFailures)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("FOOTBALL_API_TIMEOUT", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid FOOTBALL_API_TIMEOUT")
		}
	})

	t.Run("invalid circuit failure count", func(t *testing.T) {
		t.Setenv("FOOTBALL_API_TIMEOUT", "10s")
		t.Setenv("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for FOOTBALL_API_CIRCUIT_FAILURE_COUNT=0")
		}
	})
}

func TestLoad_TeamAndLeagueOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("custom ids", func(t *testing.T) {
		t.Setenv("FCZ_TEAM_ID", "565")
		t.Setenv("FCZ_LEAGUE_ID", "208")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.TeamID != 565 {
			t.Fatalf("unexpected team id: %d", cfg.TeamID)
		}
		if cfg.LeagueID != 208 {
			t.Fatalf("unexpected league id: %d", cfg.LeagueID)
		}
	})

	t.Run("invalid team id", func(t *testing.T) {
		t.Setenv("FCZ_TEAM_ID", "-1")
		t.Setenv("FCZ_LEAGUE_ID", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative FCZ_TEAM_ID")
		}
	})
}

func TestLoad_DBRequiresURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("DB_URL", "postgres://stats:stats@db:5432/fcz_stats?sslmode=disable")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.DBEnabled {
		t.Fatalf("expected DBEnabled=true")
	}
	if cfg.DBURL != "postgres://stats:stats@db:5432/fcz_stats?sslmode=disable" {
		t.Fatalf("unexpected db url: %q", cfg.DBURL)
	}
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}

func TestLoad_RefreshConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("enabled with custom values", func(t *testing.T) {
		t.Setenv("REFRESH_ENABLED", "true")
		t.Setenv("REFRESH_INTERVAL", "90s")
		t.Setenv("REFRESH_MAX_WORKERS", "2")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.RefreshEnabled {
			t.Fatalf("expected RefreshEnabled=true")
		}
		if cfg.RefreshInterval != 90*time.Second {
			t.Fatalf("unexpected refresh interval: %s", cfg.RefreshInterval)
		}
		if cfg.RefreshMaxWorkers != 2 {
			t.Fatalf("unexpected refresh max workers: %d", cfg.RefreshMaxWorkers)
		}
	})

	t.Run("invalid worker count", func(t *testing.T) {
		t.Setenv("REFRESH_MAX_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for REFRESH_MAX_WORKERS=0")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "fcz-stats-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "fcz-stats-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}
