// Package metrics provides the performance tracker used by the sorting
// algorithms to count comparisons, swaps and array accesses alongside a
// monotonic execution timer.
package metrics

import (
	"fmt"
	"time"
)

// Tracker accumulates operation counters for a single algorithm run.
//
// A Tracker is not safe for concurrent use: the expected lifecycle is one
// in-flight sort driving one tracker through Reset → StartTimer → record* →
// StopTimer. Reusing the same tracker across sequential runs is fine because
// each run resets it up front; sharing it across goroutines requires
// external synchronization.
type Tracker struct {
	comparisons       int64
	swaps             int64
	arrayAccesses     int64
	memoryAllocations int64

	start time.Time
	end   time.Time
}

// Snapshot is a point-in-time copy of all tracker metrics, decoupled from
// further mutation of the tracker it was taken from.
type Snapshot struct {
	ElapsedTime       time.Duration
	Comparisons       int64
	Swaps             int64
	ArrayAccesses     int64
	MemoryAllocations int64
}

// NewTracker returns a tracker with all counters at zero.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Reset zeroes all counters and clears both timer endpoints.
func (t *Tracker) Reset() {
	t.comparisons = 0
	t.swaps = 0
	t.arrayAccesses = 0
	t.memoryAllocations = 0
	t.start = time.Time{}
	t.end = time.Time{}
}

// StartTimer records the measurement window start. time.Now carries a
// monotonic clock reading, so the elapsed time is immune to wall-clock
// adjustments.
func (t *Tracker) StartTimer() {
	t.start = time.Now()
}

// StopTimer records the measurement window end. Pairing is not validated;
// stopping a timer that was never started produces a nonsensical elapsed
// time.
func (t *Tracker) StopTimer() {
	t.end = time.Now()
}

// RecordComparison adds one element comparison.
func (t *Tracker) RecordComparison() {
	t.comparisons++
}

// RecordComparisons adds n element comparisons. n is not validated and must
// be non-negative.
func (t *Tracker) RecordComparisons(n int64) {
	t.comparisons += n
}

// RecordSwap adds one element swap.
func (t *Tracker) RecordSwap() {
	t.swaps++
}

// RecordSwaps adds n element swaps.
func (t *Tracker) RecordSwaps(n int64) {
	t.swaps += n
}

// RecordArrayAccess adds one array read or write.
func (t *Tracker) RecordArrayAccess() {
	t.arrayAccesses++
}

// RecordArrayAccesses adds n array reads or writes.
func (t *Tracker) RecordArrayAccesses(n int64) {
	t.arrayAccesses += n
}

// RecordMemoryAllocation adds bytes to the allocation counter. The sorters
// never call this; the hook exists for callers that want to attribute
// allocations to a run themselves.
func (t *Tracker) RecordMemoryAllocation(bytes int64) {
	t.memoryAllocations += bytes
}

// ElapsedTime returns end minus start. It is only meaningful after a
// StartTimer/StopTimer pair following a Reset: it reports zero right after
// Reset and a negative duration while a started timer has not yet been
// stopped.
func (t *Tracker) ElapsedTime() time.Duration {
	return t.end.Sub(t.start)
}

// Comparisons returns the comparison count.
func (t *Tracker) Comparisons() int64 {
	return t.comparisons
}

// Swaps returns the swap count.
func (t *Tracker) Swaps() int64 {
	return t.swaps
}

// ArrayAccesses returns the array access count.
func (t *Tracker) ArrayAccesses() int64 {
	return t.arrayAccesses
}

// MemoryAllocations returns the allocated byte count.
func (t *Tracker) MemoryAllocations() int64 {
	return t.memoryAllocations
}

// Snapshot copies the current metrics. Later recording on the tracker does
// not alter a previously taken snapshot.
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		ElapsedTime:       t.ElapsedTime(),
		Comparisons:       t.comparisons,
		Swaps:             t.swaps,
		ArrayAccesses:     t.arrayAccesses,
		MemoryAllocations: t.memoryAllocations,
	}
}

// ToCSV renders the metrics as a headerless CSV fragment in the fixed order
// elapsed_ns,comparisons,swaps,arrayAccesses,memoryAllocations with no
// trailing newline.
func (t *Tracker) ToCSV() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d",
		t.ElapsedTime().Nanoseconds(), t.comparisons, t.swaps,
		t.arrayAccesses, t.memoryAllocations)
}
