package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/clock"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

const (
	defaultWatchInterval = 5 * time.Minute
	errorSleepDuration   = 30 * time.Second
)

// WatcherService periodically recomputes the estimate for a fixed fork height
// and hands results to the recorder. ForkHeight 0 tracks the suggested height
// behind the live tip instead of a pinned one.
type WatcherService struct {
	calculator *CalculatorService
	recorder   EstimateRecorder
	budget     model.ResourceBudget
	forkHeight uint64
	interval   time.Duration
	logger     *zap.Logger
	sleep      func(context.Context, time.Duration) error
}

// NewWatcherService builds the watcher. interval <= 0 falls back to the
// default.
func NewWatcherService(
	calculator *CalculatorService,
	recorder EstimateRecorder,
	budget model.ResourceBudget,
	forkHeight uint64,
	interval time.Duration,
	logger *zap.Logger,
) *WatcherService {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &WatcherService{
		calculator: calculator,
		recorder:   recorder,
		budget:     budget,
		forkHeight: forkHeight,
		interval:   interval,
		logger:     logger.Named("watcher"),
		sleep:      clock.SleepWithContext,
	}
}

// Run recomputes and records estimates until the context is canceled.
// Individual recomputations may fail transiently (node restarts, reindexing);
// the loop logs and retries rather than exiting.
func (s *WatcherService) Run(ctx context.Context) error {
	s.recorder.Start(ctx)
	defer s.recorder.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.runOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("watch iteration failed", zap.Error(err))
			if err := s.sleep(ctx, errorSleepDuration); err != nil {
				return err
			}
			continue
		}
		if err := s.sleep(ctx, s.interval); err != nil {
			return err
		}
	}
}

func (s *WatcherService) runOnce(ctx context.Context) error {
	forkHeight := s.forkHeight
	if forkHeight == 0 {
		suggested, err := s.calculator.SuggestedForkHeight(ctx)
		if err != nil {
			return err
		}
		forkHeight = suggested
	}

	estimate, err := s.calculator.PointEstimate(ctx, forkHeight, s.budget)
	if err != nil {
		return err
	}
	return s.recorder.Record(ctx, estimate)
}
