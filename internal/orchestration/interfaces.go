//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/primecalc/internal/progress"
)

// ProgressReporter defines the interface for displaying sieve progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner, TUI
// bars) while the orchestrator focuses on coordinating the workers.
type ProgressReporter interface {
	// DisplayProgress consumes progress updates from the channel until it is
	// closed. It should be called in a separate goroutine and must call
	// wg.Done when the channel is drained.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numWorkers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.Update, numWorkers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numWorkers int, out io.Writer) {
	f(wg, progressChan, numWorkers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain channel silently
	}
}

// ResultPresenter defines the interface for presenting the final summary.
// Decoupling presentation this way allows different output formats (CLI,
// TUI, files) without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentSummary displays the final summary of a completed run.
	PresentSummary(s Summary, verbose, showAll bool, out io.Writer)

	// PresentChunkTable displays the per-chunk timing breakdown.
	PresentChunkTable(timings []ChunkTiming, out io.Writer)
}

// ErrorHandler handles run errors and returns process exit codes.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}

// MetricsRecorder receives computation milestones for export (Prometheus).
// The orchestrator calls it from worker goroutines, so implementations must
// be safe for concurrent use.
type MetricsRecorder interface {
	// WorkerStarted is called when a worker goroutine begins sieving.
	WorkerStarted()
	// WorkerFinished is called when a worker goroutine completes.
	WorkerFinished()
	// ChunkCompleted records one finished chunk.
	ChunkCompleted(primesFound int, d time.Duration)
	// RunCompleted records the whole run after aggregation.
	RunCompleted(primeCount int, elapsed time.Duration)
}

// NullMetricsRecorder is a no-op MetricsRecorder used when no metrics
// endpoint is configured.
type NullMetricsRecorder struct{}

// WorkerStarted is a no-op.
func (NullMetricsRecorder) WorkerStarted() {}

// WorkerFinished is a no-op.
func (NullMetricsRecorder) WorkerFinished() {}

// ChunkCompleted is a no-op.
func (NullMetricsRecorder) ChunkCompleted(int, time.Duration) {}

// RunCompleted is a no-op.
func (NullMetricsRecorder) RunCompleted(int, time.Duration) {}
