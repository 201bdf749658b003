// Package orchestration coordinates the parallel segmented sieve: it
// partitions the range into chunks, dispatches one worker goroutine per
// chunk, merges the per-chunk results under a single shared lock, and
// aggregates the merged collection into a summary.
package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/progress"
	"github.com/agbru/primecalc/internal/sieve"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// worker goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ChunkTiming records the outcome of one worker's chunk.
type ChunkTiming struct {
	// Chunk is the sub-interval the worker sieved.
	Chunk Chunk
	// Primes is how many primes the worker found in its chunk.
	Primes int
	// Duration is the wall time the worker spent sieving.
	Duration time.Duration
}

// ExecuteSieve runs the parallel segmented sieve over [start, end] with the
// given base primes and worker count.
//
// Each worker sieves its chunk entirely in private memory, then performs one
// exclusive-access bulk append into the shared result slice; the single lock
// acquisition per worker keeps contention negligible. ExecuteSieve blocks
// until every dispatched worker has completed.
//
// The returned prime collection is unordered; callers pass it to Summarize,
// which sorts it. Chunk timings are indexed by worker. A non-nil error means
// the computation was aborted (context expiry before a worker started); no
// partial results are returned in that case.
func ExecuteSieve(ctx context.Context, start, end int64, base []int64, workers int, reporter ProgressReporter, rec MetricsRecorder, out io.Writer) ([]int64, []ChunkTiming, error) {
	chunks := Partition(start, end, workers)

	g, ctx := errgroup.WithContext(ctx)
	progressChan := make(chan progress.Update, len(chunks)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(chunks), out)

	var mu sync.Mutex
	found := make([]int64, 0)
	timings := make([]ChunkTiming, len(chunks))

	for _, c := range chunks {
		chunk := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec.WorkerStarted()
			defer rec.WorkerFinished()

			startTime := time.Now()
			local := sieve.Segment(chunk.Start, chunk.End, base, func(v float64) {
				progressChan <- progress.Update{WorkerIndex: chunk.Index, Value: v}
			})
			elapsed := time.Since(startTime)

			mu.Lock()
			found = append(found, local...)
			timings[chunk.Index] = ChunkTiming{Chunk: chunk, Primes: len(local), Duration: elapsed}
			mu.Unlock()

			rec.ChunkCompleted(len(local), elapsed)
			return nil
		})
	}

	err := g.Wait()
	close(progressChan)
	displayWg.Wait()

	if err != nil {
		if apperrors.IsContextError(err) {
			return nil, nil, err
		}
		return nil, nil, apperrors.SieveError{Cause: err}
	}
	return found, timings, nil
}
