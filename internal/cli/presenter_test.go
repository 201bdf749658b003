package cli

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/orchestration"
)

func TestPresentSummary(t *testing.T) {
	var sb strings.Builder
	CLIResultPresenter{}.PresentSummary(sampleSummary(), false, false, &sb)
	out := sb.String()

	for _, want := range []string{
		"--- Sieve Summary ---",
		"Primes found: 10",
		"Prime sum:    129",
		"Largest 10:   2 3 5 7 11 13 17 19 23 29",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "All primes:") {
		t.Error("full list printed without showAll")
	}
}

func TestPresentSummaryShowAll(t *testing.T) {
	var sb strings.Builder
	CLIResultPresenter{}.PresentSummary(sampleSummary(), false, true, &sb)
	if !strings.Contains(sb.String(), "All primes:") {
		t.Error("showAll did not print the full list")
	}
}

func TestPresentSummaryEmptyRun(t *testing.T) {
	var sb strings.Builder
	s := orchestration.Summary{Sum: new(big.Int)}
	CLIResultPresenter{}.PresentSummary(s, false, false, &sb)
	out := sb.String()
	if !strings.Contains(out, "Primes found: 0") {
		t.Errorf("output missing zero count:\n%s", out)
	}
	if strings.Contains(out, "Largest") {
		t.Error("empty run should not print a largest-primes line")
	}
}

func TestPresentChunkTable(t *testing.T) {
	var sb strings.Builder
	timings := []orchestration.ChunkTiming{
		{Chunk: orchestration.Chunk{Index: 0, Start: 1, End: 50}, Primes: 15, Duration: 2 * time.Millisecond},
		{Chunk: orchestration.Chunk{Index: 1, Start: 51, End: 100}, Primes: 10, Duration: 3 * time.Millisecond},
	}
	CLIResultPresenter{}.PresentChunkTable(timings, &sb)
	out := sb.String()

	for _, want := range []string{"Worker", "Range", "Primes", "Duration", "[1, 50]", "[51, 100]", "2ms", "3ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"nil", nil, apperrors.ExitSuccess, ""},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled, "Computation aborted"},
		{"deadline", context.DeadlineExceeded, apperrors.ExitErrorTimeout, "Computation aborted"},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric, "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			code := CLIResultPresenter{}.HandleError(tt.err, &sb)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantText != "" && !strings.Contains(sb.String(), tt.wantText) {
				t.Errorf("output = %q, want substring %q", sb.String(), tt.wantText)
			}
		})
	}
}

func TestWriteWrapped(t *testing.T) {
	var sb strings.Builder
	values := make([]int64, 25)
	for i := range values {
		values[i] = int64(i + 1)
	}
	writeWrapped(&sb, values)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "1 2 3 4 5 6 7 8 9 10" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[2] != "21 22 23 24 25" {
		t.Errorf("last line = %q", lines[2])
	}
}

func TestJoinInt64s(t *testing.T) {
	if got := joinInt64s(nil, " "); got != "" {
		t.Errorf("joinInt64s(nil) = %q, want empty", got)
	}
	if got := joinInt64s([]int64{2, 3, 5}, ", "); got != "2, 3, 5" {
		t.Errorf("joinInt64s = %q", got)
	}
}
