package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fcz-stats/internal/platform/logging"
)

type RefreshConfig struct {
	Enabled    bool
	Interval   time.Duration
	MaxWorkers int
}

type RefreshCycleResult struct {
	TaskCount    int                 `json:"task_count"`
	SuccessCount int                 `json:"success_count"`
	FailedCount  int                 `json:"failed_count"`
	WorkerCount  int                 `json:"worker_count"`
	Tasks        []RefreshTaskResult `json:"tasks"`
}

type RefreshTaskResult struct {
	Task       string `json:"task"`
	Status     string `json:"status"`
	Source     string `json:"source,omitempty"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"

	refreshTaskOverview = "overview"
)

// RefreshService keeps the cached dataset warm so requests rarely pay
// for a live fetch. Each cycle runs its tasks on a bounded worker pool.
type RefreshService struct {
	stats  *StatsService
	cfg    RefreshConfig
	logger *logging.Logger

	cancel  context.CancelFunc
	done    chan struct{}
	started atomic.Bool

	cycleCount atomic.Int64
	lastRunAt  atomic.Int64
}

func NewRefreshService(stats *StatsService, cfg RefreshConfig, logger *logging.Logger) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}

	return &RefreshService{
		stats:  stats,
		cfg:    cfg,
		logger: logger,
	}
}

// Start launches the refresh loop. No-op when the service is disabled
// or already running.
func (s *RefreshService) Start(ctx context.Context) {
	if !s.cfg.Enabled || s.stats == nil {
		return
	}
	if !s.started.CompareAndSwap(false, true) {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
}

// Stop signals the loop and waits for the in-flight cycle to finish.
func (s *RefreshService) Stop() {
	if !s.started.CompareAndSwap(true, false) {
		return
	}

	s.cancel()
	<-s.done
}

func (s *RefreshService) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	// Warm the cache immediately instead of waiting a full interval.
	s.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *RefreshService) runCycle(ctx context.Context) {
	result, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "refresh cycle failed", "error", err)
		return
	}

	s.logger.InfoContext(ctx, "refresh cycle finished",
		"cycle", s.cycleCount.Load(),
		"task_count", result.TaskCount,
		"success_count", result.SuccessCount,
		"failed_count", result.FailedCount,
	)
}

// RunOnce executes one refresh cycle and reports per-task outcomes.
func (s *RefreshService) RunOnce(ctx context.Context) (RefreshCycleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.RunOnce")
	defer span.End()

	if s.stats == nil {
		return RefreshCycleResult{}, fmt.Errorf("%w: refresh is not fully configured", ErrDependencyUnavailable)
	}

	tasks := []string{refreshTaskOverview}
	workerCount := normalizeRefreshWorkerCount(s.cfg.MaxWorkers, len(tasks))

	result := RefreshCycleResult{
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
		Tasks:       make([]RefreshTaskResult, 0, len(tasks)),
	}

	rows := make(chan RefreshTaskResult, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshCycleResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := s.runRefreshTask(ctx, task)
			row.DurationMs = time.Since(start).Milliseconds()

			if row.Status == refreshStatusSuccess {
				successCount.Add(1)
			} else {
				failedCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return RefreshCycleResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Tasks = append(result.Tasks, row)
	}

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.cycleCount.Add(1)
	s.lastRunAt.Store(time.Now().Unix())
	return result, nil
}

func (s *RefreshService) runRefreshTask(ctx context.Context, task string) RefreshTaskResult {
	row := RefreshTaskResult{Task: task}

	switch task {
	case refreshTaskOverview:
		dataset := s.stats.Refresh(ctx)
		row.Status = refreshStatusSuccess
		row.Source = dataset.Source
	default:
		row.Status = refreshStatusFailed
		row.Message = "unsupported refresh task"
	}
	return row
}

func normalizeRefreshWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > 2 {
		value = 2
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
