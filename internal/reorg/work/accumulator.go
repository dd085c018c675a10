// Package work computes the cumulative proof-of-work a competing chain must
// exceed and converts between blocks, time and hashrate under the current
// difficulty regime.
package work

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/reorg/chain"
)

// progressLogInterval is the block cadence for accumulation progress logs.
const progressLogInterval = 1000

type (
	// AccumulatorMetrics records metrics for chain work accumulation.
	AccumulatorMetrics interface {
		ObserveAccumulate(err error, blocks uint64, started time.Time)
	}
)

// Accumulator reduces a height range to total chain work. Stateless beyond its
// dependencies; one source lookup per height, no caching, no retries.
type Accumulator struct {
	source  chain.Source
	metrics AccumulatorMetrics
	logger  *zap.Logger
}

// NewAccumulator constructs an Accumulator over the given source.
func NewAccumulator(source chain.Source, metrics AccumulatorMetrics, logger *zap.Logger) *Accumulator {
	return &Accumulator{
		source:  source,
		metrics: metrics,
		logger:  logger,
	}
}

// Accumulate sums block difficulty over [forkHeight, tipHeight] inclusive,
// walking ascending for a reproducible reduction order. On any failed lookup
// it returns a *SourceUnavailableError and no partial sum.
func (a *Accumulator) Accumulate(ctx context.Context, forkHeight, tipHeight uint64) (sample model.ChainWorkSample, err error) {
	started := time.Now()
	defer func() {
		if a.metrics != nil {
			a.metrics.ObserveAccumulate(err, tipHeight-forkHeight, started)
		}
	}()

	if tipHeight < forkHeight {
		return model.ChainWorkSample{}, &HeightRangeError{ForkHeight: forkHeight, TipHeight: tipHeight}
	}

	var totalWork float64
	for height := forkHeight; ; height++ {
		if err := ctx.Err(); err != nil {
			return model.ChainWorkSample{}, &SourceUnavailableError{Height: height, Err: err}
		}
		difficulty, err := a.source.BlockDifficulty(ctx, height)
		if err != nil {
			return model.ChainWorkSample{}, &SourceUnavailableError{Height: height, Err: err}
		}
		totalWork += difficulty

		if a.logger != nil && (height%progressLogInterval == 0 || height == tipHeight) {
			a.logger.Debug("accumulated block",
				zap.Uint64("height", height),
				zap.Float64("difficulty", difficulty),
				zap.Float64("total_work", totalWork))
		}
		if height == tipHeight {
			break
		}
	}

	return model.ChainWorkSample{
		ForkHeight: forkHeight,
		TipHeight:  tipHeight,
		TotalWork:  totalWork,
	}, nil
}

// SuffixSums returns, for every height in [lowestHeight, tipHeight], the total
// work of [height, tipHeight]. Index 0 corresponds to lowestHeight. One source
// lookup per height, then one backward running-total reduction over the fetched
// difficulties.
func (a *Accumulator) SuffixSums(ctx context.Context, lowestHeight, tipHeight uint64) ([]float64, error) {
	if tipHeight < lowestHeight {
		return nil, &HeightRangeError{ForkHeight: lowestHeight, TipHeight: tipHeight}
	}

	difficulties := make([]float64, 0, tipHeight-lowestHeight+1)
	for height := lowestHeight; ; height++ {
		if err := ctx.Err(); err != nil {
			return nil, &SourceUnavailableError{Height: height, Err: err}
		}
		difficulty, err := a.source.BlockDifficulty(ctx, height)
		if err != nil {
			return nil, &SourceUnavailableError{Height: height, Err: err}
		}
		difficulties = append(difficulties, difficulty)
		if height == tipHeight {
			break
		}
	}

	// One backward running total: sums[i] = difficulties[i] + sums[i+1]. The
	// reduction order is fixed (descending height), so every scan over the same
	// range reproduces bit-identical totals.
	sums := make([]float64, len(difficulties))
	var total float64
	for i := len(difficulties) - 1; i >= 0; i-- {
		total += difficulties[i]
		sums[i] = total
	}
	return sums, nil
}
