package benchmark

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sortlab/sortbench/insertion"
)

// elapsedHistMax bounds the per-repeat elapsed-time histogram at one minute,
// far beyond any in-memory insertion sort in the size matrix.
const elapsedHistMax = int64(time.Minute)

// RunBenchmark orchestrates the full benchmark lifecycle: log setup, the
// sizes x distributions x algorithms matrix, CSV reporting and structured
// summary logs.
func RunBenchmark(cfg Config) error {
	setupLog(cfg)
	initialLog(cfg)

	out, closeOut, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	reporter := NewCSVReporter(out)
	if err := reporter.WriteHeader(); err != nil {
		return err
	}

	for _, size := range cfg.Sizes {
		if size > cfg.MaxSize {
			log.Warn().Int("size", size).Int("max_size", cfg.MaxSize).
				Msg("Skipping size above safety cap")
			continue
		}

		for _, distType := range cfg.Distributions {
			dist, err := CreateDistribution(distType)
			if err != nil {
				return err
			}

			for _, algo := range matrixAlgorithms(cfg.Algorithm) {
				result, err := runSingle(cfg, size, dist, algo)
				if err != nil {
					log.Error().Err(err).
						Int("size", size).
						Str("distribution", dist.Name()).
						Str("algorithm", string(algo)).
						Msg("Benchmark cell failed")
					continue
				}
				if err := reporter.WriteResult(result); err != nil {
					return err
				}
			}
		}
	}

	log.Info().Str("benchmark_id", cfg.BenchmarkID).Msg("Benchmark complete")
	return nil
}

// runSingle executes one benchmark cell: generate the dataset, warm up,
// run the measured repeats and verify every output. The returned result
// carries the tracker snapshot of the final repeat.
func runSingle(cfg Config, size int, dist Distribution, algo Algorithm) (Result, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	data := dist.Generate(rng, size)

	sorter := insertion.New()
	run := sorterFunc(sorter, algo)

	// Sort never mutates its input, so warmup and measured repeats can
	// share one dataset.
	for i := 0; i < cfg.Warmup; i++ {
		if _, err := run(data); err != nil {
			return Result{}, err
		}
	}

	hist := hdrhistogram.New(1, elapsedHistMax, 3)
	for i := 0; i < cfg.Repeats; i++ {
		sorted, err := run(data)
		if err != nil {
			return Result{}, err
		}
		if !sort.IntsAreSorted(sorted) {
			return Result{}, fmt.Errorf("sorting verification failed for size %d distribution %s", size, dist.Name())
		}
		if err := hist.RecordValue(sorter.Tracker().ElapsedTime().Nanoseconds()); err != nil {
			log.Warn().Err(err).Msg("Elapsed time outside histogram range")
		}
	}

	snapshot := sorter.Tracker().Snapshot()
	summary := log.Info().
		Int("size", size).
		Str("distribution", dist.Name()).
		Str("algorithm", string(algo)).
		Int64("time_ns", snapshot.ElapsedTime.Nanoseconds()).
		Int64("comparisons", snapshot.Comparisons).
		Int64("swaps", snapshot.Swaps).
		Int64("array_accesses", snapshot.ArrayAccesses)
	if cfg.Repeats > 1 {
		summary = summary.
			Int64("time_ns_mean", int64(hist.Mean())).
			Int64("time_ns_p50", hist.ValueAtQuantile(50)).
			Int64("time_ns_p95", hist.ValueAtQuantile(95)).
			Int64("time_ns_max", hist.Max())
	}
	summary.Msg("Benchmark cell complete")

	return Result{
		Size:         size,
		Distribution: dist.Name(),
		Algorithm:    algo,
		Metrics:      snapshot,
	}, nil
}

// sorterFunc selects the sort variant under measurement.
func sorterFunc(s *insertion.Sorter, algo Algorithm) func([]int) ([]int, error) {
	if algo == AlgorithmTraditional {
		return s.TraditionalSort
	}
	return s.Sort
}

// matrixAlgorithms expands "both" into its two concrete variants.
func matrixAlgorithms(a Algorithm) []Algorithm {
	if a == AlgorithmBoth {
		return []Algorithm{AlgorithmOptimized, AlgorithmTraditional}
	}
	return []Algorithm{a}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}

func initialLog(cfg Config) {
	dists := make([]string, len(cfg.Distributions))
	for i, d := range cfg.Distributions {
		dists[i] = string(d)
	}

	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Ints("sizes", cfg.Sizes).
		Strs("distributions", dists).
		Str("algorithm", string(cfg.Algorithm)).
		Int64("seed", cfg.Seed).
		Int("warmup", cfg.Warmup).
		Int("repeats", cfg.Repeats).
		Msg("Starting benchmark")
}
