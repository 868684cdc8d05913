package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerStartsAtZero(t *testing.T) {
	tr := NewTracker()

	assert.Zero(t, tr.Comparisons())
	assert.Zero(t, tr.Swaps())
	assert.Zero(t, tr.ArrayAccesses())
	assert.Zero(t, tr.MemoryAllocations())
	assert.Equal(t, time.Duration(0), tr.ElapsedTime())
}

func TestTrackerRecordsCounters(t *testing.T) {
	tr := NewTracker()

	tr.RecordComparison()
	tr.RecordComparisons(4)
	tr.RecordSwap()
	tr.RecordSwaps(2)
	tr.RecordArrayAccess()
	tr.RecordArrayAccesses(9)
	tr.RecordMemoryAllocation(1024)

	assert.Equal(t, int64(5), tr.Comparisons())
	assert.Equal(t, int64(3), tr.Swaps())
	assert.Equal(t, int64(10), tr.ArrayAccesses())
	assert.Equal(t, int64(1024), tr.MemoryAllocations())
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.RecordComparisons(7)
	tr.RecordSwaps(3)
	tr.RecordArrayAccesses(11)
	tr.RecordMemoryAllocation(64)
	tr.StartTimer()
	tr.StopTimer()

	tr.Reset()

	assert.Zero(t, tr.Comparisons())
	assert.Zero(t, tr.Swaps())
	assert.Zero(t, tr.ArrayAccesses())
	assert.Zero(t, tr.MemoryAllocations())
	assert.Equal(t, time.Duration(0), tr.ElapsedTime())
}

func TestTrackerElapsedTime(t *testing.T) {
	tr := NewTracker()

	tr.StartTimer()
	time.Sleep(time.Millisecond)
	tr.StopTimer()

	assert.GreaterOrEqual(t, tr.ElapsedTime(), time.Millisecond)
}

func TestTrackerElapsedBeforeStopIsNotMeaningful(t *testing.T) {
	tr := NewTracker()

	tr.StartTimer()

	// A started but unstopped timer reads negative; callers must pair
	// StartTimer with StopTimer before trusting ElapsedTime.
	assert.Negative(t, int64(tr.ElapsedTime()))
}

func TestTrackerSnapshotIsDecoupled(t *testing.T) {
	tr := NewTracker()
	tr.RecordComparisons(2)
	tr.RecordSwap()
	tr.RecordArrayAccesses(5)

	snap := tr.Snapshot()
	tr.RecordComparisons(100)
	tr.RecordSwaps(100)
	tr.RecordArrayAccesses(100)

	assert.Equal(t, int64(2), snap.Comparisons)
	assert.Equal(t, int64(1), snap.Swaps)
	assert.Equal(t, int64(5), snap.ArrayAccesses)
	assert.Equal(t, int64(102), tr.Comparisons())
}

func TestTrackerToCSV(t *testing.T) {
	tr := NewTracker()
	tr.RecordComparisons(12)
	tr.RecordSwaps(3)
	tr.RecordArrayAccesses(40)
	tr.RecordMemoryAllocation(256)

	want := fmt.Sprintf("%d,12,3,40,256", tr.ElapsedTime().Nanoseconds())
	require.Equal(t, want, tr.ToCSV())
}

func TestTrackerToCSVZeroState(t *testing.T) {
	tr := NewTracker()

	require.Equal(t, "0,0,0,0,0", tr.ToCSV())
}
