// Package chain defines the interface between the work calculator and a live
// chain-data provider.
package chain

import (
	"context"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

// Source is a synchronous, read-only view of a chain. How it is backed (node
// RPC, cached snapshot, test fixture) is irrelevant to the calculator.
type Source interface {
	// BlockDifficulty returns the recorded difficulty of the block at height.
	BlockDifficulty(ctx context.Context, height uint64) (float64, error)
	// LatestHeight returns the tip height currently known to the source.
	LatestHeight(ctx context.Context) (uint64, error)
	// NetworkState returns the current height and network difficulty.
	NetworkState(ctx context.Context) (model.NetworkState, error)
}
