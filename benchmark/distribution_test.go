package benchmark

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDistributionKnownTypes(t *testing.T) {
	for _, dt := range DefaultDistributions {
		dist, err := CreateDistribution(dt)
		require.NoError(t, err)
		assert.Equal(t, string(dt), dist.Name())
		assert.NotEmpty(t, dist.Description())
	}
}

func TestCreateDistributionUnknownType(t *testing.T) {
	_, err := CreateDistribution("gaussian")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gaussian")
}

func TestSortedDistribution(t *testing.T) {
	dist, err := CreateDistribution(DistributionSorted)
	require.NoError(t, err)

	data := dist.Generate(rand.New(rand.NewSource(42)), 50)

	require.Len(t, data, 50)
	assert.True(t, sort.IntsAreSorted(data))
	assert.Equal(t, 0, data[0])
	assert.Equal(t, 49, data[49])
}

func TestReverseDistribution(t *testing.T) {
	dist, err := CreateDistribution(DistributionReverse)
	require.NoError(t, err)

	data := dist.Generate(rand.New(rand.NewSource(42)), 50)

	require.Len(t, data, 50)
	assert.False(t, sort.IntsAreSorted(data))
	for i := 0; i < len(data)-1; i++ {
		assert.Greater(t, data[i], data[i+1])
	}
}

func TestRandomDistributionDeterministic(t *testing.T) {
	dist, err := CreateDistribution(DistributionRandom)
	require.NoError(t, err)

	first := dist.Generate(rand.New(rand.NewSource(42)), 100)
	second := dist.Generate(rand.New(rand.NewSource(42)), 100)
	other := dist.Generate(rand.New(rand.NewSource(43)), 100)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	for _, v := range first {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 1000)
	}
}

func TestNearlySortedDistribution(t *testing.T) {
	dist, err := CreateDistribution(DistributionNearlySorted)
	require.NoError(t, err)

	data := dist.Generate(rand.New(rand.NewSource(42)), 100)

	// Swapping pairs permutes 0..n-1 without changing the element set.
	require.Len(t, data, 100)
	sorted := append([]int(nil), data...)
	sort.Ints(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}
}

func TestDistributionsHandleZeroSize(t *testing.T) {
	for _, dt := range DefaultDistributions {
		dist, err := CreateDistribution(dt)
		require.NoError(t, err)
		assert.Empty(t, dist.Generate(rand.New(rand.NewSource(1)), 0))
	}
}
