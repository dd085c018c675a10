// Package model defines domain models for reorg work estimation.
package model

import "time"

// BlockDifficulty is one block's recorded difficulty, normalized to the
// network's baseline unit. Immutable once fetched.
type BlockDifficulty struct {
	Height     uint64
	Difficulty float64
}

// ChainWorkSample is the summed difficulty of [ForkHeight, TipHeight] inclusive.
type ChainWorkSample struct {
	ForkHeight uint64
	TipHeight  uint64
	TotalWork  float64
}

// Blocks returns the number of blocks covered by the sample.
func (s ChainWorkSample) Blocks() uint64 {
	return s.TipHeight - s.ForkHeight + 1
}

// NetworkState is a snapshot of the live chain. Valid only for the query that
// produced it.
type NetworkState struct {
	CurrentHeight     uint64
	CurrentDifficulty float64
}

// ResourceBudget is the caller's resource constraint: exactly one of Hashrate
// (hashes per second) or TargetSeconds must be positive.
type ResourceBudget struct {
	Hashrate      float64
	TargetSeconds float64
}

// HashrateBudget constructs a budget bounded by available hashrate.
func HashrateBudget(hashesPerSecond float64) ResourceBudget {
	return ResourceBudget{Hashrate: hashesPerSecond}
}

// DurationBudget constructs a budget bounded by a target completion time.
func DurationBudget(d time.Duration) ResourceBudget {
	return ResourceBudget{TargetSeconds: d.Seconds()}
}

// ReorgEstimate is the result of one feasibility calculation. The budgeted
// quantity is echoed and the complementary one derived, so both Hashrate and
// DurationSeconds are always populated.
type ReorgEstimate struct {
	Coin                  Coin
	Network               Network
	ForkHeight            uint64
	TipHeight             uint64
	BlocksToReorg         uint64
	TotalWork             float64
	CurrentDifficulty     float64
	BlocksNeeded          uint64
	Hashrate              float64
	DurationSeconds       float64
	SingleBlockSufficient bool
	CreatedAt             time.Time
}

// CandidateHeight is one scanned fork height in batch mode.
type CandidateHeight struct {
	ForkHeight       uint64
	TotalWork        float64
	BlocksNeeded     uint64
	RequiredHashrate float64
	DurationSeconds  float64
}
