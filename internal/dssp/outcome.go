package dssp

import "github.com/structbio/dsspbatch/internal/discovery"

// Outcome classifies what happened to a single item during a run.
type Outcome int

const (
	// OutcomeSkipped means the artifact already existed and the tool was
	// not invoked. This is the resume mechanism.
	OutcomeSkipped Outcome = iota
	// OutcomeSucceeded means the tool ran and produced the artifact.
	OutcomeSucceeded
	// OutcomeFailed means the tool failed, was unavailable, timed out, or
	// the input was unusable. No artifact remains on disk.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result couples an item with its outcome. Err carries the diagnostic for
// failed items and is nil otherwise. Results are ephemeral: they exist for
// logging and counting within a run and are never persisted.
type Result struct {
	Item    discovery.Item
	Outcome Outcome
	Err     error
}
