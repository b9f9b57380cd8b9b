// Package exceldiff computes structural diffs between two versions of a
// spreadsheet workbook: per-sheet row additions, deletions and modifications
// with cell-level deltas, robust against rows shifting position.
package exceldiff

import (
	"fmt"
	"runtime"
)

// DefaultThreshold is the default minimum similarity score for two rows to be
// reported as a modification rather than a delete plus an add.
const DefaultThreshold = 0.5

// Options configures a workbook comparison.
type Options struct {
	// Threshold is the minimum similarity score in (0,1] accepted by the
	// similarity pass. Scores exactly at the threshold are accepted.
	Threshold float64
	// Parallelism bounds the number of sheets compared concurrently.
	// Zero or negative selects GOMAXPROCS. Parallelism never changes the
	// output, only how fast it is produced.
	Parallelism int
}

// DefaultOptions returns the default comparison options.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold}
}

// Validate checks the options before any matching work begins. An out-of-range
// threshold is an error, never silently clamped.
func (o Options) Validate() error {
	if o.Threshold <= 0 || o.Threshold > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, o.Threshold)
	}
	return nil
}

func (o Options) parallelism() int {
	if o.Parallelism > 0 {
		return o.Parallelism
	}
	return runtime.GOMAXPROCS(0)
}
