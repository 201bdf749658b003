package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/progress"
	"github.com/agbru/primecalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI
// output. It wraps DisplayProgress to provide a spinner and progress bar
// during the sieve.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing work.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.Update, numWorkers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numWorkers, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for the
// command-line interface with formatted, colorized output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentSummary displays the final summary of a completed run: elapsed
// time, prime count, sum, and the largest primes. With showAll it appends
// the full prime list.
func (CLIResultPresenter) PresentSummary(s orchestration.Summary, verbose, showAll bool, out io.Writer) {
	fmt.Fprintf(out, "\n--- Sieve Summary ---\n")
	fmt.Fprintf(out, "Elapsed:      %s%s%s (sieve + sort, excluding I/O)\n",
		ui.ColorYellow(), format.FormatExecutionDuration(s.Elapsed), ui.ColorReset())
	fmt.Fprintf(out, "Primes found: %s%s%s\n",
		ui.ColorGreen(), format.GroupInt(int64(s.Count)), ui.ColorReset())
	fmt.Fprintf(out, "Prime sum:    %s%s%s\n",
		ui.ColorGreen(), format.GroupBig(s.Sum), ui.ColorReset())

	if len(s.TopK) > 0 {
		fmt.Fprintf(out, "Largest %d:   %s%s%s\n",
			len(s.TopK), ui.ColorCyan(), joinInt64s(s.TopK, " "), ui.ColorReset())
	}

	if showAll {
		fmt.Fprintf(out, "\nAll primes:\n")
		writeWrapped(out, s.Primes)
	}
}

// PresentChunkTable displays the per-chunk timing breakdown in a formatted
// tabular layout. Manual padding keeps columns aligned without depending on
// ANSI-unaware tabwriters.
func (CLIResultPresenter) PresentChunkTable(timings []orchestration.ChunkTiming, out io.Writer) {
	fmt.Fprintf(out, "\n--- Chunk Breakdown ---\n")

	maxRangeLen := len("Range")
	maxPrimesLen := len("Primes")
	rows := make([]struct{ rng, primes, dur string }, len(timings))
	for i, t := range timings {
		rows[i].rng = fmt.Sprintf("[%d, %d]", t.Chunk.Start, t.Chunk.End)
		rows[i].primes = format.GroupInt(int64(t.Primes))
		rows[i].dur = format.FormatExecutionDuration(t.Duration)
		if len(rows[i].rng) > maxRangeLen {
			maxRangeLen = len(rows[i].rng)
		}
		if len(rows[i].primes) > maxPrimesLen {
			maxPrimesLen = len(rows[i].primes)
		}
	}

	fmt.Fprintf(out, "%sWorker%s   %sRange%s%s   %sPrimes%s%s   %sDuration%s\n",
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxRangeLen-len("Range")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxPrimesLen-len("Primes")),
		ui.ColorUnderline(), ui.ColorReset())
	for i, t := range timings {
		fmt.Fprintf(out, "%-6d   %s   %s   %s\n",
			t.Chunk.Index,
			padRight(rows[i].rng, maxRangeLen),
			padRight(rows[i].primes, maxPrimesLen),
			rows[i].dur)
	}
}

// HandleError prints a run error and returns the matching process exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	if apperrors.IsContextError(err) {
		fmt.Fprintf(out, "%sComputation aborted: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return apperrors.ExitCodeForError(err)
}

// primesPerLine bounds console line width when dumping the full list.
const primesPerLine = 10

func writeWrapped(out io.Writer, primes []int64) {
	for i := 0; i < len(primes); i += primesPerLine {
		end := i + primesPerLine
		if end > len(primes) {
			end = len(primes)
		}
		fmt.Fprintln(out, joinInt64s(primes[i:end], " "))
	}
}

func joinInt64s(values []int64, sep string) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
