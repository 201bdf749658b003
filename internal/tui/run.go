package tui

import (
	"context"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/primecalc/internal/config"
	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/progress"
	"github.com/agbru/primecalc/internal/sieve"
)

// Run launches the dashboard and the sieve side by side. The sieve executes
// in a background goroutine and streams progress into the bubbletea program;
// quitting the dashboard before completion abandons the run.
//
// Returns the process exit code.
func Run(ctx context.Context, cfg config.AppConfig, rec orchestration.MetricsRecorder) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(cfg), tea.WithContext(ctx), tea.WithAltScreen())

	go func() {
		startTime := time.Now()
		base := sieve.BasePrimes(sieve.SqrtBound(cfg.End))

		forward := orchestration.ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan progress.Update, _ int, _ io.Writer) {
			defer wg.Done()
			for u := range ch {
				p.Send(progressMsg(u))
			}
		})

		primes, timings, err := orchestration.ExecuteSieve(ctx, cfg.Start, cfg.End, base, cfg.Workers, forward, rec, io.Discard)
		if err != nil {
			p.Send(failMsg{err: err})
			return
		}
		s := orchestration.Summarize(primes, cfg.TopK, startTime)
		rec.RunCompleted(s.Count, s.Elapsed)
		p.Send(doneMsg{summary: s, timings: timings})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitErrorGeneric
}
