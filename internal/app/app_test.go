package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/logging"
)

func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	a, err := New(append([]string{"primecalc"}, args...), io.Discard, WithLogger(logging.Nop()))
	if err != nil {
		t.Fatalf("New(%v) error: %v", args, err)
	}
	return a
}

func TestNewInvalidFlags(t *testing.T) {
	_, err := New([]string{"primecalc", "--start", "0"}, io.Discard, WithLogger(logging.Nop()))
	if err == nil {
		t.Fatal("expected an error for invalid configuration")
	}
	if got := apperrors.ExitCodeForError(err); got != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", got, apperrors.ExitErrorConfig)
	}
}

func TestNewHelp(t *testing.T) {
	var sb strings.Builder
	_, err := New([]string{"primecalc", "--help"}, &sb, WithLogger(logging.Nop()))
	if !IsHelpError(err) {
		t.Fatalf("error = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(sb.String(), "-workers") {
		t.Error("usage text not written to errWriter")
	}
}

func TestRunQuiet(t *testing.T) {
	a := newTestApp(t, "--start", "1", "--end", "100", "-w", "4", "-q")

	var out strings.Builder
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
	}
	if got := strings.TrimSpace(out.String()); got != "25 1060" {
		t.Errorf("quiet output = %q, want %q", got, "25 1060")
	}
}

func TestRunVerboseSummary(t *testing.T) {
	a := newTestApp(t, "--end", "30", "-w", "2", "-v", "--no-color")

	var out strings.Builder
	code := a.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{
		"--- Sieve Summary ---",
		"Primes found: 10",
		"Prime sum:    129",
		"--- Chunk Breakdown ---",
		"Memory:",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunWritesOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.txt")
	a := newTestApp(t, "--end", "30", "-w", "2", "-q", "-o", path)

	var out strings.Builder
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("results file not written: %v", err)
	}
	if !strings.Contains(string(data), " 10 129") {
		t.Errorf("results file missing count/sum line:\n%s", data)
	}
}

func TestRunCanceled(t *testing.T) {
	a := newTestApp(t, "--end", "1000000", "-w", "4", "-q")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code := a.Run(ctx, io.Discard)
	if code != apperrors.ExitErrorCanceled {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func TestRunTimeout(t *testing.T) {
	a := newTestApp(t, "--end", "100", "-w", "2", "-q")

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	code := a.Run(ctx, io.Discard)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"--version"}) || !HasVersionFlag([]string{"-version"}) {
		t.Error("version flag not detected")
	}
	if HasVersionFlag([]string{"--verbose"}) || HasVersionFlag(nil) {
		t.Error("false positive version detection")
	}
}

func TestPrintVersion(t *testing.T) {
	var sb strings.Builder
	PrintVersion(&sb)
	if !strings.Contains(sb.String(), "primecalc dev") {
		t.Errorf("version banner = %q", sb.String())
	}
}
