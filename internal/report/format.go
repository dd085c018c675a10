// Package report renders calculation results for humans and appends them to a
// results log.
package report

import "fmt"

const (
	secondsPerHour = 3600.0
	secondsPerDay  = 86400.0
)

// FormatHashrate renders a hashes-per-second figure with a binary SI scale.
func FormatHashrate(hashrate float64) string {
	switch {
	case hashrate >= 1e15:
		return fmt.Sprintf("%.2f PH/s", hashrate/1e15)
	case hashrate >= 1e12:
		return fmt.Sprintf("%.2f TH/s", hashrate/1e12)
	case hashrate >= 1e9:
		return fmt.Sprintf("%.2f GH/s", hashrate/1e9)
	default:
		return fmt.Sprintf("%.0f H/s", hashrate)
	}
}

// FormatDuration renders a duration in seconds as hours and days.
func FormatDuration(seconds float64) string {
	return fmt.Sprintf("%.2f hours (%.2f days)", seconds/secondsPerHour, seconds/secondsPerDay)
}
