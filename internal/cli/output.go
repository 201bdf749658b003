// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/format"
	"github.com/agbru/primecalc/internal/orchestration"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the results (empty for no file output).
	OutputFile string
	// WriteAll includes the full prime list in the file.
	WriteAll bool
	// Quiet mode suppresses verbose output.
	Quiet bool
}

// WriteResultToFile persists a run summary. The data lines follow the
// historical results format: a single `<elapsedSeconds> <count> <sum>` line
// followed by the largest primes on one line, optionally followed by the
// full list. A failure returns an OutputError; the in-memory summary stays
// valid for other collaborators.
func WriteResultToFile(s orchestration.Summary, start, end int64, workers int, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.OutputError{Path: cfg.OutputFile, Cause: err}
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return apperrors.OutputError{Path: cfg.OutputFile, Cause: err}
	}
	defer file.Close()

	fmt.Fprintf(file, "# primecalc results\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Range: [%d, %d]\n", start, end)
	fmt.Fprintf(file, "# Workers: %d\n", workers)
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "%s %d %s\n", format.FormatSeconds(s.Elapsed), s.Count, s.Sum.String())
	fmt.Fprintf(file, "%s\n", joinInt64s(s.TopK, " "))

	if cfg.WriteAll {
		fmt.Fprintf(file, "\n")
		writeWrapped(file, s.Primes)
	}

	return nil
}

// FormatQuietResult formats a summary for quiet mode output: a single
// `<count> <sum>` line suitable for scripting.
func FormatQuietResult(s orchestration.Summary) string {
	return fmt.Sprintf("%d %s", s.Count, s.Sum.String())
}

// DisplayQuietResult outputs a summary in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, s orchestration.Summary) {
	fmt.Fprintln(out, FormatQuietResult(s))
}
