package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/primecalc/internal/cli"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/logging"
	"github.com/agbru/primecalc/internal/metrics"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/sieve"
	"github.com/agbru/primecalc/internal/ui"
)

// runSieve orchestrates the CLI execution path: lifecycle setup, base sieve,
// parallel segment sieve, aggregation, presentation, and persistence.
func (a *Application) runSieve(ctx context.Context, out io.Writer, rec orchestration.MetricsRecorder) int {
	// Lifecycle: global timeout + signal handling
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	// Choose progress reporter based on quiet mode
	var reporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		reporter = orchestration.NullProgressReporter{}
	} else {
		reporter = cli.CLIProgressReporter{}
	}
	presenter := cli.CLIResultPresenter{}

	startTime := time.Now()

	base := sieve.BasePrimes(sieve.SqrtBound(a.Config.End))
	a.Log.Debug("base primes computed",
		logging.Int("count", len(base)),
		logging.Int64("limit", sieve.SqrtBound(a.Config.End)),
		logging.Dur("elapsed", time.Since(startTime)))

	primes, timings, err := orchestration.ExecuteSieve(ctx, a.Config.Start, a.Config.End, base, a.Config.Workers, reporter, rec, progressOut)
	if err != nil {
		a.Log.Error("sieve aborted", logging.Err(err))
		return presenter.HandleError(err, a.ErrWriter)
	}

	summary := orchestration.Summarize(primes, a.Config.TopK, startTime)
	rec.RunCompleted(summary.Count, summary.Elapsed)
	a.Log.Debug("sieve complete",
		logging.Int("primes", summary.Count),
		logging.Dur("elapsed", summary.Elapsed))

	if a.Config.Quiet {
		cli.DisplayQuietResult(out, summary)
	} else {
		presenter.PresentSummary(summary, a.Config.Verbose, a.Config.WriteAll, out)
		if a.Config.Verbose {
			presenter.PresentChunkTable(timings, out)
			fmt.Fprintf(out, "\nMemory: %s\n", metrics.NewMemoryCollector().Snapshot())
		}
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		WriteAll:   a.Config.WriteAll,
		Quiet:      a.Config.Quiet,
	}
	if err := cli.WriteResultToFile(summary, a.Config.Start, a.Config.End, a.Config.Workers, outputCfg); err != nil {
		// The in-memory summary was already presented; report the write
		// failure without discarding it.
		a.Log.Error("saving results failed", logging.Err(err))
		fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet && a.Config.OutputFile != "" {
		fmt.Fprintf(out, "\n%s✓ Results saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}

	return apperrors.ExitSuccess
}
