package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sortlab/sortbench/benchmark"
)

var (
	seed        int64
	warmup      int
	repeats     int
	algorithm   string
	benchmarkID string
	logFormat   string
	outputPath  string
	configFile  string
)

// runCmd represents the run command. It is assigned in init rather than in
// the declaration because buildConfig refers back to runCmd's flags, which
// would otherwise form an initialization cycle.
var runCmd *cobra.Command

var runCmdDef = &cobra.Command{
	Use:   "run [size [distribution]]",
	Short: "Run insertion sort benchmarks",
	Long: `Run insertion sort benchmarks.

With no positional arguments the comprehensive matrix is benchmarked:
sizes 100, 1000, 10000 and 50000 across the random, sorted, reverse and
nearly_sorted distributions. With a positive <size> (and optionally a
distribution, default random) a single benchmark is run.`,
	Example: `  sortbench run
  sortbench run 1000 random
  sortbench run 5000 sorted
  sortbench run 10000 reverse --algorithm both`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(args)
		if err != nil {
			// Bad benchmark parameters are reported with usage,
			// not treated as a command failure.
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
			cmd.Usage()
			return nil
		}
		if err := benchmark.RunBenchmark(cfg); err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

// buildConfig layers config sources: defaults, then an optional YAML file,
// then flags, then positional arguments.
func buildConfig(args []string) (benchmark.Config, error) {
	cfg := benchmark.DefaultConfig()
	if configFile != "" {
		loaded, err := benchmark.LoadConfig(configFile)
		if err != nil {
			return benchmark.Config{}, err
		}
		cfg = loaded
	}

	if runCmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if runCmd.Flags().Changed("warmup") {
		cfg.Warmup = warmup
	}
	if runCmd.Flags().Changed("repeats") {
		cfg.Repeats = repeats
	}
	if runCmd.Flags().Changed("algorithm") {
		cfg.Algorithm = benchmark.Algorithm(algorithm)
	}
	if runCmd.Flags().Changed("benchmark-id") {
		cfg.BenchmarkID = benchmarkID
	}
	if runCmd.Flags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	if runCmd.Flags().Changed("output") {
		cfg.OutputPath = outputPath
	}

	if len(args) > 0 {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return benchmark.Config{}, fmt.Errorf("invalid size parameter %q", args[0])
		}
		if size <= 0 {
			return benchmark.Config{}, fmt.Errorf("size must be positive, got %d", size)
		}
		cfg.Sizes = []int{size}
		cfg.Distributions = []benchmark.DistributionType{benchmark.DistributionRandom}
		if size > cfg.MaxSize {
			cfg.MaxSize = size
		}
	}
	if len(args) > 1 {
		cfg.Distributions = []benchmark.DistributionType{benchmark.DistributionType(args[1])}
	}

	if err := cfg.Validate(); err != nil {
		return benchmark.Config{}, err
	}
	return cfg, nil
}

func init() {
	runCmd = runCmdDef
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int64Var(&seed, "seed", benchmark.DefaultSeed, "Seed for deterministic input generation")
	runCmd.Flags().IntVar(&warmup, "warmup", benchmark.DefaultWarmup, "Unmeasured warm-up iterations per benchmark cell")
	runCmd.Flags().IntVar(&repeats, "repeats", 1, "Measured iterations per benchmark cell")
	runCmd.Flags().StringVar(&algorithm, "algorithm", string(benchmark.AlgorithmOptimized), "Sort variant: 'optimized', 'traditional' or 'both'")
	runCmd.Flags().StringVar(&benchmarkID, "benchmark-id", "default", "Optional benchmark ID tag for logs")
	runCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: 'json' or 'console'")
	runCmd.Flags().StringVar(&outputPath, "output", "", "CSV output file (default stdout)")
	runCmd.Flags().StringVar(&configFile, "config", "", "YAML benchmark configuration file")
}
