package report

import (
	"fmt"
	"os"
	"time"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
)

// FileWriter appends human-readable calculation records to a results file.
type FileWriter struct {
	path string
	now  func() time.Time
}

// NewFileWriter constructs a writer appending to path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path, now: time.Now}
}

// Append writes the estimates as one dated section at the end of the file,
// creating it if needed.
func (w *FileWriter) Append(estimates []model.ReorgEstimate) error {
	if len(estimates) == 0 {
		return nil
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n=== Reorg calculations - %s ===\n", w.now().UTC().Format("2006-01-02 15:04:05 UTC")); err != nil {
		return fmt.Errorf("write results header: %w", err)
	}

	for _, e := range estimates {
		if err := writeEstimate(f, e); err != nil {
			return err
		}
	}
	return nil
}

func writeEstimate(f *os.File, e model.ReorgEstimate) error {
	_, err := fmt.Fprintf(f,
		"\nNetwork: %s %s\nFork Height: %d\nCurrent Height: %d\nBlocks to Reorg: %d\nTotal Work: %.2f\nCurrent Difficulty: %.2f\nBlocks Needed: %d\nHashrate: %s\nTime Required: %s\nSingle High-Difficulty Block Sufficient: %t\nTimestamp: %s\n---\n",
		e.Coin,
		e.Network,
		e.ForkHeight,
		e.TipHeight,
		e.BlocksToReorg,
		e.TotalWork,
		e.CurrentDifficulty,
		e.BlocksNeeded,
		FormatHashrate(e.Hashrate),
		FormatDuration(e.DurationSeconds),
		e.SingleBlockSufficient,
		e.CreatedAt.Format("2006-01-02 15:04:05 UTC"),
	)
	if err != nil {
		return fmt.Errorf("write estimate: %w", err)
	}
	return nil
}
