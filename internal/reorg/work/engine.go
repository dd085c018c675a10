package work

import (
	"math"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

// HashesPerBitcoinDifficulty is the expected hash count of a difficulty-1
// block under the Bitcoin-style target definition (2^32).
const HashesPerBitcoinDifficulty = 4294967296.0

// Engine converts accumulated chain work plus a resource budget into a reorg
// feasibility estimate. Pure computation; any failure is a caller input error.
type Engine struct {
	// hashesPerUnitDifficulty is the network's expected hash count for a
	// unit-difficulty block. Supplied per target network, never assumed.
	hashesPerUnitDifficulty float64
}

// NewEngine constructs an Engine for a network whose unit-difficulty block
// costs the given expected number of hashes.
func NewEngine(hashesPerUnitDifficulty float64) *Engine {
	return &Engine{hashesPerUnitDifficulty: hashesPerUnitDifficulty}
}

// Estimate computes the blocks a competing chain must mine at the current
// difficulty to exceed totalWork, and derives the quantity complementary to
// the budget. The ceiling on blocks needed is deliberate: cumulative work must
// strictly exceed the old chain's, so a fractional remainder costs a full block.
func (e *Engine) Estimate(totalWork, currentDifficulty float64, budget model.ResourceBudget) (model.ReorgEstimate, error) {
	if currentDifficulty <= 0 || math.IsNaN(currentDifficulty) {
		return model.ReorgEstimate{}, &DivisionDomainError{Difficulty: currentDifficulty}
	}
	if totalWork <= 0 || math.IsNaN(totalWork) {
		return model.ReorgEstimate{}, &InvalidBudgetError{Reason: "total work must be positive"}
	}
	if err := validateBudget(budget); err != nil {
		return model.ReorgEstimate{}, err
	}

	blocksNeeded := math.Ceil(totalWork / currentDifficulty)
	hashesPerBlock := currentDifficulty * e.hashesPerUnitDifficulty
	totalHashes := blocksNeeded * hashesPerBlock

	estimate := model.ReorgEstimate{
		TotalWork:             totalWork,
		CurrentDifficulty:     currentDifficulty,
		BlocksNeeded:          uint64(blocksNeeded),
		SingleBlockSufficient: blocksNeeded <= 1,
	}

	if budget.Hashrate > 0 {
		estimate.Hashrate = budget.Hashrate
		estimate.DurationSeconds = totalHashes / budget.Hashrate
	} else {
		estimate.DurationSeconds = budget.TargetSeconds
		estimate.Hashrate = totalHashes / budget.TargetSeconds
	}

	return estimate, nil
}

// HashesPerUnitDifficulty returns the configured unit-difficulty hash cost.
func (e *Engine) HashesPerUnitDifficulty() float64 {
	return e.hashesPerUnitDifficulty
}

func validateBudget(budget model.ResourceBudget) error {
	hasHashrate := budget.Hashrate != 0
	hasDuration := budget.TargetSeconds != 0

	switch {
	case hasHashrate && hasDuration:
		return &InvalidBudgetError{Reason: "hashrate and target duration are mutually exclusive"}
	case !hasHashrate && !hasDuration:
		return &InvalidBudgetError{Reason: "either hashrate or target duration is required"}
	case hasHashrate && (budget.Hashrate < 0 || math.IsNaN(budget.Hashrate)):
		return &InvalidBudgetError{Reason: "hashrate must be positive"}
	case hasDuration && (budget.TargetSeconds < 0 || math.IsNaN(budget.TargetSeconds)):
		return &InvalidBudgetError{Reason: "target duration must be positive"}
	}
	return nil
}
