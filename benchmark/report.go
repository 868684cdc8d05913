package benchmark

import (
	"fmt"
	"io"

	"github.com/sortlab/sortbench/metrics"
)

// csvHeader is fixed: downstream tooling parses these columns in this order.
const csvHeader = "Input Size,Data Distribution,Time (ns),Comparisons,Swaps,Array Accesses,Memory Allocations"

// Result holds one benchmark cell's outcome: the metrics of the final
// measured repeat plus the matrix coordinates that produced it.
type Result struct {
	Size         int
	Distribution string
	Algorithm    Algorithm
	Metrics      metrics.Snapshot
}

// label returns the distribution column value. Traditional runs are tagged
// so both variants can share one CSV without widening the header.
func (r Result) label() string {
	if r.Algorithm == AlgorithmTraditional {
		return r.Distribution + " (traditional)"
	}
	return r.Distribution
}

// CSVReporter writes benchmark results as CSV rows to an io.Writer.
type CSVReporter struct {
	w io.Writer
}

// NewCSVReporter wraps w. Nothing is written until WriteHeader or
// WriteResult is called.
func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{w: w}
}

// WriteHeader emits the fixed column header.
func (r *CSVReporter) WriteHeader() error {
	if _, err := fmt.Fprintln(r.w, csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return nil
}

// WriteResult emits one row for a completed benchmark cell.
func (r *CSVReporter) WriteResult(res Result) error {
	_, err := fmt.Fprintf(r.w, "%d,%s,%d,%d,%d,%d,%d\n",
		res.Size, res.label(), res.Metrics.ElapsedTime.Nanoseconds(),
		res.Metrics.Comparisons, res.Metrics.Swaps,
		res.Metrics.ArrayAccesses, res.Metrics.MemoryAllocations)
	if err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	return nil
}
