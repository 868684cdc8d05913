package benchmark

import (
	"fmt"
	"math/rand"
)

// Distribution defines the interface for synthetic benchmark input shapes
type Distribution interface {
	// Name returns the CSV/CLI identifier of this distribution
	Name() string

	// Generate produces a deterministic input sequence of the given size
	Generate(rng *rand.Rand, size int) []int

	// Description returns a detailed description of the distribution
	Description() string
}

// DistributionType represents available input distributions
type DistributionType string

const (
	DistributionRandom       DistributionType = "random"
	DistributionSorted       DistributionType = "sorted"
	DistributionReverse      DistributionType = "reverse"
	DistributionNearlySorted DistributionType = "nearly_sorted"
)

// DefaultDistributions is the matrix used when no distribution is requested.
var DefaultDistributions = []DistributionType{
	DistributionRandom,
	DistributionSorted,
	DistributionReverse,
	DistributionNearlySorted,
}

// CreateDistribution creates a distribution instance based on the type
func CreateDistribution(t DistributionType) (Distribution, error) {
	switch t {
	case DistributionRandom:
		return &randomDistribution{}, nil
	case DistributionSorted:
		return &sortedDistribution{}, nil
	case DistributionReverse:
		return &reverseDistribution{}, nil
	case DistributionNearlySorted:
		return &nearlySortedDistribution{}, nil
	default:
		return nil, fmt.Errorf("unknown distribution %q", t)
	}
}

// randomDistribution is the average case: uniform values in [0, 10*size)
type randomDistribution struct{}

func (d *randomDistribution) Name() string { return string(DistributionRandom) }

func (d *randomDistribution) Description() string {
	return "Uniform random values in [0, 10*size), average-case input"
}

func (d *randomDistribution) Generate(rng *rand.Rand, size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = rng.Intn(size * 10)
	}
	return data
}

// sortedDistribution is the best case: already non-decreasing
type sortedDistribution struct{}

func (d *sortedDistribution) Name() string { return string(DistributionSorted) }

func (d *sortedDistribution) Description() string {
	return "Already sorted ascending values, best-case input"
}

func (d *sortedDistribution) Generate(rng *rand.Rand, size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = i
	}
	return data
}

// reverseDistribution is the worst case: strictly decreasing
type reverseDistribution struct{}

func (d *reverseDistribution) Name() string { return string(DistributionReverse) }

func (d *reverseDistribution) Description() string {
	return "Reverse sorted descending values, worst-case input"
}

func (d *reverseDistribution) Generate(rng *rand.Rand, size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = size - i
	}
	return data
}

// nearlySortedDistribution perturbs a sorted sequence with ~10% random pair
// swaps
type nearlySortedDistribution struct{}

func (d *nearlySortedDistribution) Name() string { return string(DistributionNearlySorted) }

func (d *nearlySortedDistribution) Description() string {
	return "Sorted ascending values with ~10% random pair swaps"
}

func (d *nearlySortedDistribution) Generate(rng *rand.Rand, size int) []int {
	data := make([]int, size)
	for i := range data {
		data[i] = i
	}
	for i := 0; i < size/10; i++ {
		a := rng.Intn(size)
		b := rng.Intn(size)
		data[a], data[b] = data[b], data[a]
	}
	return data
}
