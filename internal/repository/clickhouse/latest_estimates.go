package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

// LatestEstimates returns up to limit most recent estimates for a network,
// newest first.
func (r *Repository) LatestEstimates(ctx context.Context, coin model.Coin, network model.Network, limit uint64) (estimates []model.ReorgEstimate, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_estimates", coin, network, err, start)
	}()

	const query = `
SELECT
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
FROM reorg_estimates
WHERE coin = ? AND network = ?
ORDER BY created_at DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), limit)
	if err != nil {
		return nil, fmt.Errorf("query latest estimates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e          model.ReorgEstimate
			rowCoin    string
			rowNetwork string
		)
		if err = rows.Scan(
			&rowCoin,
			&rowNetwork,
			&e.ForkHeight,
			&e.TipHeight,
			&e.BlocksToReorg,
			&e.TotalWork,
			&e.CurrentDifficulty,
			&e.BlocksNeeded,
			&e.Hashrate,
			&e.DurationSeconds,
			&e.SingleBlockSufficient,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		e.Coin = model.Coin(rowCoin)
		e.Network = model.Network(rowNetwork)
		estimates = append(estimates, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate estimates: %w", err)
	}
	return estimates, nil
}
