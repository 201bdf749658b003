// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over PRIMECALC_* environment variables,
// which take priority over the built-in defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable this program reads.
const EnvPrefix = "PRIMECALC_"

// Built-in defaults.
const (
	DefaultStart   = int64(1)
	DefaultEnd     = int64(100_000_000)
	DefaultTopK    = 10
	DefaultTimeout = 10 * time.Minute
)

// AppConfig holds the complete runtime configuration of the application.
type AppConfig struct {
	// Start is the inclusive lower bound of the range to sieve (>= 1).
	Start int64
	// End is the inclusive upper bound of the range to sieve (>= Start).
	End int64
	// Workers is the number of concurrent sieve workers (>= 1). Each worker
	// is assigned exactly one contiguous chunk of the range.
	Workers int
	// TopK is how many of the largest primes the summary reports.
	TopK int
	// Timeout bounds the whole computation.
	Timeout time.Duration
	// OutputFile, when non-empty, is where results are persisted.
	OutputFile string
	// WriteAll includes the full prime list in file and console output.
	WriteAll bool
	// Quiet reduces output to a single machine-readable line.
	Quiet bool
	// Verbose adds per-chunk timings and memory statistics to the output.
	Verbose bool
	// NoColor disables ANSI colors regardless of terminal detection.
	NoColor bool
	// TUI launches the interactive dashboard instead of plain CLI output.
	TUI bool
	// MetricsAddr, when non-empty, serves Prometheus metrics on this address
	// for the duration of the run.
	MetricsAddr string
}

// DefaultWorkerCount picks a worker count from the hardware. One goroutine
// per logical CPU is the sweet spot for this purely CPU-bound workload;
// beyond 32 the scheduling overhead outweighs any gain for chunk counts this
// small.
func DefaultWorkerCount() int {
	numCPU := runtime.NumCPU()
	switch {
	case numCPU <= 1:
		return 1
	case numCPU >= 32:
		return 32
	default:
		return numCPU
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment variable overrides for flags not explicitly set, and validates
// the result. Usage and parse errors are written to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		Start:   DefaultStart,
		End:     DefaultEnd,
		Workers: DefaultWorkerCount(),
		TopK:    DefaultTopK,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.Int64Var(&cfg.Start, "start", cfg.Start, "Inclusive lower bound of the range (>= 1)")
	fs.Int64Var(&cfg.End, "end", cfg.End, "Inclusive upper bound of the range (>= start)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of concurrent sieve workers")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "Number of concurrent sieve workers (shorthand)")
	fs.IntVar(&cfg.TopK, "top", cfg.TopK, "How many of the largest primes to report")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Global timeout for the computation")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "File to persist results to")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "File to persist results to (shorthand)")
	fs.BoolVar(&cfg.WriteAll, "all", cfg.WriteAll, "Include the full prime list in the output")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Print only 'count sum' for scripting")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Print only 'count sum' for scripting (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Show per-chunk timings and memory statistics")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Show per-chunk timings and memory statistics (shorthand)")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "Launch the interactive dashboard")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "Serve Prometheus metrics on this address during the run (e.g. :9090)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg); err != nil {
		// flag.Parse prints its own errors; validation errors need the same
		// visibility before the caller exits.
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants that must hold before any
// worker is dispatched.
func Validate(cfg AppConfig) error {
	if cfg.Start < 1 {
		return apperrors.ValidationError{Field: "start", Message: "must be >= 1"}
	}
	if cfg.End < cfg.Start {
		return apperrors.ValidationError{Field: "end", Message: "must be >= start"}
	}
	if cfg.Workers < 1 {
		return apperrors.ValidationError{Field: "workers", Message: "must be >= 1"}
	}
	if cfg.TopK < 1 {
		return apperrors.ValidationError{Field: "top", Message: "must be >= 1"}
	}
	if cfg.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	return nil
}
