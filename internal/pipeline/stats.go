package pipeline

import "time"

// RunStats tracks counters for a single conversion run
type RunStats struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Found     int // inputs discovered
	Pending   int // inputs without an artifact before the run
	Batches   int // batches actually dispatched
	Succeeded int
	Skipped   int
	Failed    int
}

// Processed returns the number of items that received an outcome.
func (s *RunStats) Processed() int {
	return s.Succeeded + s.Skipped + s.Failed
}
