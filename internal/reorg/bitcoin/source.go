// Package bitcoin backs the work calculator with a bitcoind JSON-RPC node.
package bitcoin

import (
	"context"
	"fmt"
	"math"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	"github.com/goodnatureofminers/reorgcalc7000-backend/pkg/safe"
)

// Source implements chain.Source for Bitcoin-family networks. Block difficulty
// is derived from header compact bits against the network pow limit rather
// than trusted from the node's float rendering.
type Source struct {
	rpc       RPCClient
	network   model.Network
	limitBits uint32
}

// NewSource creates a Source for the given network.
func NewSource(rpc RPCClient, network model.Network) (*Source, error) {
	limitBits, err := PowLimitBits(network)
	if err != nil {
		return nil, err
	}
	return &Source{
		rpc:       rpc,
		network:   network,
		limitBits: limitBits,
	}, nil
}

// BlockDifficulty returns the difficulty of the block at the given height.
func (s *Source) BlockDifficulty(ctx context.Context, height uint64) (float64, error) {
	if height > math.MaxInt64 {
		return 0, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	hash, err := s.rpc.GetBlockHash(int64(height))
	if err != nil {
		return 0, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	header, err := s.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		return 0, fmt.Errorf("get block header %s: %w", hash, err)
	}
	bits, err := parseBits(header.Bits)
	if err != nil {
		return 0, fmt.Errorf("block %d bits parse: %w", height, err)
	}
	return bitsToDifficulty(bits, s.limitBits), nil
}

// LatestHeight returns the tip height known to the node.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// NetworkState snapshots the node's current height and network difficulty.
func (s *Source) NetworkState(ctx context.Context) (model.NetworkState, error) {
	height, err := s.LatestHeight(ctx)
	if err != nil {
		return model.NetworkState{}, err
	}
	difficulty, err := s.rpc.GetDifficulty()
	if err != nil {
		return model.NetworkState{}, fmt.Errorf("get network difficulty: %w", err)
	}
	if difficulty <= 0 {
		return model.NetworkState{}, fmt.Errorf("node reported non-positive difficulty %g", difficulty)
	}
	return model.NetworkState{
		CurrentHeight:     height,
		CurrentDifficulty: difficulty,
	}, nil
}
