package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	usecasemock "github.com/riskibarqy/fcz-stats/internal/mocks/usecase"
)

func TestRefreshService_RunOnce_Success(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("HasKey").Return(false).Once()

	stats := newTestStatsService(provider, nil, nil)
	service := NewRefreshService(stats, RefreshConfig{Enabled: true, Interval: time.Minute, MaxWorkers: 1}, nil)

	result, err := service.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("run once: %v", err)
	}
	if result.TaskCount != 1 || result.SuccessCount != 1 || result.FailedCount != 0 {
		t.Fatalf("unexpected cycle result: %+v", result)
	}
	if len(result.Tasks) != 1 || result.Tasks[0].Task != refreshTaskOverview {
		t.Fatalf("unexpected task rows: %+v", result.Tasks)
	}
	if result.Tasks[0].Source != SourceSample {
		t.Fatalf("expected sample source, got %q", result.Tasks[0].Source)
	}
}

func TestRefreshService_RunOnce_NotConfigured(t *testing.T) {
	t.Parallel()

	service := NewRefreshService(nil, RefreshConfig{Enabled: true}, nil)

	_, err := service.RunOnce(context.Background())
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestRefreshService_StartStop(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("HasKey").Return(false)

	stats := newTestStatsService(provider, nil, nil)
	service := NewRefreshService(stats, RefreshConfig{Enabled: true, Interval: time.Hour, MaxWorkers: 1}, nil)

	service.Start(context.Background())
	// Second Start is a no-op while the loop runs.
	service.Start(context.Background())
	service.Stop()
	// Stop after stop must not panic or block.
	service.Stop()
}

func TestRefreshService_StartDisabledIsNoop(t *testing.T) {
	t.Parallel()

	service := NewRefreshService(nil, RefreshConfig{Enabled: false}, nil)
	service.Start(context.Background())
	service.Stop()
}

func TestNormalizeRefreshWorkerCount(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		taskCount int
		want      int
	}{
		{name: "zero value defaults to one", value: 0, taskCount: 3, want: 1},
		{name: "negative value defaults to one", value: -4, taskCount: 3, want: 1},
		{name: "capped at two", value: 8, taskCount: 3, want: 2},
		{name: "never more workers than tasks", value: 2, taskCount: 1, want: 1},
		{name: "no tasks still needs one worker", value: 2, taskCount: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeRefreshWorkerCount(tt.value, tt.taskCount); got != tt.want {
				t.Fatalf("expected %d workers, got %d", tt.want, got)
			}
		})
	}
}
