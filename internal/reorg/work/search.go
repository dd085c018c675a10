package work

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	"github.com/goodnatureofminers/reorgcalc7000-backend/pkg/workerpool"
)

const defaultScanWorkerCount = 8

type (
	// ScannerMetrics records metrics for batch fork-height scans.
	ScannerMetrics interface {
		ObserveScan(err error, candidates int, started time.Time)
	}
)

// Scanner walks candidate fork heights and estimates the effort each reorg
// would take under a fixed budget.
type Scanner struct {
	accumulator *Accumulator
	engine      *Engine
	metrics     ScannerMetrics
	logger      *zap.Logger
	workerCount int
}

// NewScanner constructs a Scanner. workerCount <= 0 falls back to the default.
func NewScanner(accumulator *Accumulator, engine *Engine, metrics ScannerMetrics, logger *zap.Logger, workerCount int) *Scanner {
	if workerCount <= 0 {
		workerCount = defaultScanWorkerCount
	}
	return &Scanner{
		accumulator: accumulator,
		engine:      engine,
		metrics:     metrics,
		logger:      logger,
		workerCount: workerCount,
	}
}

// FindViableForkHeights estimates every candidate fork height descending from
// tipHeight-1 to lowestHeight under the given budget, then returns the full
// set sorted by required hashrate ascending (ties broken by higher fork
// height). It is a full scan with no early exit; filtering is the caller's
// choice. The first failed candidate aborts the scan, since a missing
// difficulty would poison every deeper candidate's total.
func (s *Scanner) FindViableForkHeights(
	ctx context.Context,
	tipHeight, lowestHeight uint64,
	currentDifficulty float64,
	budget model.ResourceBudget,
) (candidates []model.CandidateHeight, err error) {
	started := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveScan(err, len(candidates), started)
		}
	}()

	if tipHeight == 0 || tipHeight-1 < lowestHeight {
		return nil, &HeightRangeError{ForkHeight: lowestHeight, TipHeight: tipHeight}
	}
	if err := validateBudget(budget); err != nil {
		return nil, err
	}

	// One pass over the range; every candidate reuses the shared read-only
	// suffix-sum array instead of re-walking the source per height.
	sums, err := s.accumulator.SuffixSums(ctx, lowestHeight, tipHeight)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("scanning fork heights",
			zap.Uint64("tip_height", tipHeight),
			zap.Uint64("lowest_height", lowestHeight),
			zap.Int("workers", s.workerCount))
	}

	slots := make([]int, 0, tipHeight-lowestHeight)
	for i := 0; uint64(i) < tipHeight-lowestHeight; i++ {
		slots = append(slots, i)
	}

	// Workers write disjoint result slots; the sums slice is shared read-only,
	// so the incremental-sum optimization survives parallelism.
	results := make([]model.CandidateHeight, len(slots))
	err = workerpool.Process(ctx, s.workerCount, slots, func(_ context.Context, slot int) error {
		height := tipHeight - 1 - uint64(slot)
		totalWork := sums[height-lowestHeight]
		estimate, err := s.engine.Estimate(totalWork, currentDifficulty, budget)
		if err != nil {
			return err
		}
		results[slot] = model.CandidateHeight{
			ForkHeight:       height,
			TotalWork:        totalWork,
			BlocksNeeded:     estimate.BlocksNeeded,
			RequiredHashrate: estimate.Hashrate,
			DurationSeconds:  estimate.DurationSeconds,
		}
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}

	sortCandidates(results)
	return results, nil
}

func sortCandidates(candidates []model.CandidateHeight) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].RequiredHashrate != candidates[j].RequiredHashrate {
			return candidates[i].RequiredHashrate < candidates[j].RequiredHashrate
		}
		return candidates[i].ForkHeight > candidates[j].ForkHeight
	})
}

// ViableWithin filters a sorted candidate set to those whose required hashrate
// does not exceed the available hashrate.
func ViableWithin(candidates []model.CandidateHeight, availableHashrate float64) []model.CandidateHeight {
	viable := make([]model.CandidateHeight, 0, len(candidates))
	for _, c := range candidates {
		if c.RequiredHashrate <= availableHashrate {
			viable = append(viable, c)
		}
	}
	return viable
}
