package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sortlab/sortbench/benchmark"
)

func TestBuildConfigNoArgs(t *testing.T) {
	cfg, err := buildConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, benchmark.DefaultSizes, cfg.Sizes)
	assert.Len(t, cfg.Distributions, 4)
	assert.Equal(t, benchmark.AlgorithmOptimized, cfg.Algorithm)
}

func TestBuildConfigSizeOnly(t *testing.T) {
	cfg, err := buildConfig([]string{"1000"})

	require.NoError(t, err)
	assert.Equal(t, []int{1000}, cfg.Sizes)
	assert.Equal(t, []benchmark.DistributionType{benchmark.DistributionRandom}, cfg.Distributions)
}

func TestBuildConfigSizeAndDistribution(t *testing.T) {
	cfg, err := buildConfig([]string{"500", "sorted"})

	require.NoError(t, err)
	assert.Equal(t, []int{500}, cfg.Sizes)
	assert.Equal(t, []benchmark.DistributionType{benchmark.DistributionSorted}, cfg.Distributions)
}

func TestBuildConfigRejectsNonNumericSize(t *testing.T) {
	_, err := buildConfig([]string{"abc"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid size")
}

func TestBuildConfigRejectsNonPositiveSize(t *testing.T) {
	for _, arg := range []string{"0", "-10"} {
		_, err := buildConfig([]string{arg})
		assert.Error(t, err, "size %s", arg)
	}
}

func TestBuildConfigRejectsUnknownDistribution(t *testing.T) {
	_, err := buildConfig([]string{"100", "zipf"})

	require.Error(t, err)
}

func TestBuildConfigLiftsSafetyCapForExplicitSize(t *testing.T) {
	cfg, err := buildConfig([]string{"200000"})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, cfg.MaxSize, 200000)
}
