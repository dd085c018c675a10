package work

import "fmt"

// HeightRangeError reports a malformed fork/tip height range.
type HeightRangeError struct {
	ForkHeight uint64
	TipHeight  uint64
}

func (e *HeightRangeError) Error() string {
	return fmt.Sprintf("fork height %d exceeds tip height %d", e.ForkHeight, e.TipHeight)
}

// SourceUnavailableError reports a failed chain-data lookup. No partial sums
// are returned alongside it.
type SourceUnavailableError struct {
	Height uint64
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("block difficulty at height %d unavailable: %v", e.Height, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// InvalidBudgetError reports a resource budget with neither or both quantities
// set, or a non-positive value.
type InvalidBudgetError struct {
	Reason string
}

func (e *InvalidBudgetError) Error() string {
	return "invalid resource budget: " + e.Reason
}

// DivisionDomainError reports a non-positive difficulty. Unreachable for
// validated inputs, but difficulty usually arrives from a live query.
type DivisionDomainError struct {
	Difficulty float64
}

func (e *DivisionDomainError) Error() string {
	return fmt.Sprintf("current difficulty %g must be positive", e.Difficulty)
}
