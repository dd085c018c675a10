package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

// InsertEstimates stores estimate rows in ClickHouse.
func (r *Repository) InsertEstimates(ctx context.Context, estimates []model.ReorgEstimate) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_estimates", firstCoin(estimates), firstNetwork(estimates), err, start)
	}()

	if len(estimates) == 0 {
		return nil
	}

	const query = `
INSERT INTO reorg_estimates (
	coin,
	network,
	fork_height,
	tip_height,
	blocks_to_reorg,
	total_work,
	current_difficulty,
	blocks_needed,
	hashrate,
	duration_seconds,
	single_block_sufficient,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare estimates batch: %w", err)
	}

	for _, e := range estimates {
		if err = batch.Append(
			string(e.Coin),
			string(e.Network),
			e.ForkHeight,
			e.TipHeight,
			e.BlocksToReorg,
			e.TotalWork,
			e.CurrentDifficulty,
			e.BlocksNeeded,
			e.Hashrate,
			e.DurationSeconds,
			e.SingleBlockSufficient,
			e.CreatedAt,
		); err != nil {
			return fmt.Errorf("append estimate: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert estimates: %w", err)
	}
	return nil
}
