package benchmark

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Algorithm selects which sort variant a benchmark run measures
type Algorithm string

const (
	AlgorithmOptimized   Algorithm = "optimized"
	AlgorithmTraditional Algorithm = "traditional"
	AlgorithmBoth        Algorithm = "both"
)

const (
	// DefaultSeed makes every run reproducible unless overridden
	DefaultSeed = 42

	// DefaultWarmup is the number of unmeasured iterations before timing
	DefaultWarmup = 5

	// DefaultMaxSize caps matrix entries as a memory safety check
	DefaultMaxSize = 100000
)

// DefaultSizes is the input-size matrix used when no size is requested.
var DefaultSizes = []int{100, 1000, 10000, 50000}

// Config defines the benchmark parameters passed from CLI or config file
type Config struct {
	Sizes         []int              `yaml:"sizes"`         // input sizes to benchmark
	Distributions []DistributionType `yaml:"distributions"` // input shapes to benchmark
	Seed          int64              `yaml:"seed"`          // RNG seed for deterministic inputs
	Warmup        int                `yaml:"warmup"`        // unmeasured iterations per cell
	Repeats       int                `yaml:"repeats"`       // measured iterations per cell
	Algorithm     Algorithm          `yaml:"algorithm"`     // optimized, traditional or both
	BenchmarkID   string             `yaml:"benchmark_id"`  // optional label for this run
	LogFormat     string             `yaml:"log_format"`    // "json" or "console", default is "console"
	OutputPath    string             `yaml:"output"`        // CSV destination, empty means stdout
	MaxSize       int                `yaml:"max_size"`      // sizes above this are skipped
}

// DefaultConfig returns the full comprehensive-benchmark matrix.
func DefaultConfig() Config {
	return Config{
		Sizes:         append([]int(nil), DefaultSizes...),
		Distributions: append([]DistributionType(nil), DefaultDistributions...),
		Seed:          DefaultSeed,
		Warmup:        DefaultWarmup,
		Repeats:       1,
		Algorithm:     AlgorithmOptimized,
		BenchmarkID:   "default",
		LogFormat:     "console",
		MaxSize:       DefaultMaxSize,
	}
}

// LoadConfig reads a YAML benchmark configuration, filling unset fields with
// defaults and validating the result.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values the runner cannot work with.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no input sizes configured")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("input size must be positive, got %d", size)
		}
	}
	if len(c.Distributions) == 0 {
		return fmt.Errorf("no distributions configured")
	}
	for _, dist := range c.Distributions {
		if _, err := CreateDistribution(dist); err != nil {
			return err
		}
	}
	switch c.Algorithm {
	case AlgorithmOptimized, AlgorithmTraditional, AlgorithmBoth:
	default:
		return fmt.Errorf("unknown algorithm %q", c.Algorithm)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must be non-negative, got %d", c.Warmup)
	}
	if c.Repeats < 1 {
		return fmt.Errorf("repeats must be at least 1, got %d", c.Repeats)
	}
	return nil
}
