package orchestration_test

import (
	"context"
	"io"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/primecalc/internal/orchestration"
	"github.com/agbru/primecalc/internal/orchestration/mocks"
	"github.com/agbru/primecalc/internal/sieve"
)

// TestExecuteSieveMetricsLifecycle verifies the recorder contract: one
// started/finished pair and one chunk completion per dispatched worker.
func TestExecuteSieveMetricsLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const workers = 4
	chunks := orchestration.Partition(1, 100, workers)

	rec := mocks.NewMockMetricsRecorder(ctrl)
	rec.EXPECT().WorkerStarted().Times(len(chunks))
	rec.EXPECT().WorkerFinished().Times(len(chunks))
	rec.EXPECT().ChunkCompleted(gomock.Any(), gomock.Any()).Times(len(chunks))

	base := sieve.BasePrimes(sieve.SqrtBound(100))
	primes, _, err := orchestration.ExecuteSieve(context.Background(), 1, 100, base, workers,
		orchestration.NullProgressReporter{}, rec, io.Discard)
	if err != nil {
		t.Fatalf("ExecuteSieve error: %v", err)
	}
	if len(primes) != 25 {
		t.Errorf("len(primes) = %d, want 25", len(primes))
	}
}

// TestExecuteSieveCanceledSkipsMetrics verifies that a context canceled
// before dispatch records no worker activity.
func TestExecuteSieveCanceledSkipsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := mocks.NewMockMetricsRecorder(ctrl)
	rec.EXPECT().WorkerStarted().Times(0)
	rec.EXPECT().WorkerFinished().Times(0)
	rec.EXPECT().ChunkCompleted(gomock.Any(), gomock.Any()).Times(0)

	base := sieve.BasePrimes(10)
	_, _, err := orchestration.ExecuteSieve(ctx, 1, 100, base, 4,
		orchestration.NullProgressReporter{}, rec, io.Discard)
	if err == nil {
		t.Fatal("expected a cancellation error")
	}
}
