// Package service orchestrates the reorg work calculator against a live node.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/reorg/work"
)

// defaultForkOffset is how far behind the tip the suggested fork height sits
// when the caller does not supply one.
const defaultForkOffset = 100

// quickScanOffsets are the sampled distances behind the tip used by the quick
// batch mode.
var quickScanOffsets = []uint64{1, 10, 50, 100, 500, 1000, 5000}

// CalculatorService computes point estimates and batch scans.
type CalculatorService struct {
	source      ChainSource
	accumulator *work.Accumulator
	engine      *work.Engine
	scanner     *work.Scanner
	coin        model.Coin
	network     model.Network
	logger      *zap.Logger
	now         func() time.Time
}

// NewCalculatorService builds the calculator service with the provided
// dependencies.
func NewCalculatorService(
	source ChainSource,
	accumulator *work.Accumulator,
	engine *work.Engine,
	scanner *work.Scanner,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
) *CalculatorService {
	return &CalculatorService{
		source:      source,
		accumulator: accumulator,
		engine:      engine,
		scanner:     scanner,
		coin:        coin,
		network:     network,
		logger: logger.With(
			zap.String("coin", string(coin)),
			zap.String("network", string(network)),
		),
		now: time.Now,
	}
}

// SuggestedForkHeight returns the default fork height for the current tip.
func (s *CalculatorService) SuggestedForkHeight(ctx context.Context) (uint64, error) {
	tip, err := s.source.LatestHeight(ctx)
	if err != nil {
		return 0, err
	}
	if tip < defaultForkOffset {
		return 0, nil
	}
	return tip - defaultForkOffset, nil
}

// PointEstimate accumulates chain work from forkHeight to the current tip and
// estimates the reorg effort under the budget.
func (s *CalculatorService) PointEstimate(ctx context.Context, forkHeight uint64, budget model.ResourceBudget) (model.ReorgEstimate, error) {
	state, err := s.source.NetworkState(ctx)
	if err != nil {
		return model.ReorgEstimate{}, err
	}
	if forkHeight > state.CurrentHeight {
		return model.ReorgEstimate{}, &work.HeightRangeError{ForkHeight: forkHeight, TipHeight: state.CurrentHeight}
	}

	sample, err := s.accumulator.Accumulate(ctx, forkHeight, state.CurrentHeight)
	if err != nil {
		return model.ReorgEstimate{}, err
	}

	estimate, err := s.engine.Estimate(sample.TotalWork, state.CurrentDifficulty, budget)
	if err != nil {
		return model.ReorgEstimate{}, err
	}

	estimate.Coin = s.coin
	estimate.Network = s.network
	estimate.ForkHeight = sample.ForkHeight
	estimate.TipHeight = sample.TipHeight
	estimate.BlocksToReorg = sample.Blocks()
	estimate.CreatedAt = s.now().UTC()

	s.logger.Info("estimate computed",
		zap.Uint64("fork_height", estimate.ForkHeight),
		zap.Uint64("tip_height", estimate.TipHeight),
		zap.Float64("total_work", estimate.TotalWork),
		zap.Uint64("blocks_needed", estimate.BlocksNeeded),
		zap.Bool("single_block_sufficient", estimate.SingleBlockSufficient))

	return estimate, nil
}

// Scan estimates every candidate fork height from tip-1 down to lowestHeight
// under the budget. The first failed candidate aborts the scan.
func (s *CalculatorService) Scan(ctx context.Context, lowestHeight uint64, budget model.ResourceBudget) ([]model.CandidateHeight, error) {
	state, err := s.source.NetworkState(ctx)
	if err != nil {
		return nil, err
	}
	return s.scanner.FindViableForkHeights(ctx, state.CurrentHeight, lowestHeight, state.CurrentDifficulty, budget)
}

// QuickScan estimates the sampled fork offsets behind the tip. Unlike Scan,
// candidates are independent full accumulations, so a failing offset is logged
// and skipped instead of aborting.
func (s *CalculatorService) QuickScan(ctx context.Context, budget model.ResourceBudget) ([]model.ReorgEstimate, error) {
	tip, err := s.source.LatestHeight(ctx)
	if err != nil {
		return nil, err
	}

	estimates := make([]model.ReorgEstimate, 0, len(quickScanOffsets))
	for _, offset := range quickScanOffsets {
		if offset >= tip {
			continue
		}
		estimate, err := s.PointEstimate(ctx, tip-offset, budget)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			s.logger.Warn("quick scan offset failed",
				zap.Uint64("fork_height", tip-offset),
				zap.Error(err))
			continue
		}
		estimates = append(estimates, estimate)
	}
	return estimates, nil
}
