package format

import (
	"fmt"
	"strings"
	"time"
)

// ProgressState tracks per-worker progress values and computes their average,
// which is what a single consolidated progress bar displays when several
// workers run in parallel.
type ProgressState struct {
	progresses []float64
	numWorkers int
}

// NewProgressState creates a ProgressState tracking numWorkers workers.
func NewProgressState(numWorkers int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numWorkers),
		numWorkers: numWorkers,
	}
}

// Update records a new progress value for a specific worker. Updates with an
// out-of-range index are ignored.
func (ps *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage computes the average progress across all tracked workers.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numWorkers == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numWorkers)
}

// ProgressWithETA extends ProgressState with a smoothed progress rate used to
// estimate the remaining time. The rate is an exponential moving average so a
// single slow chunk does not make the estimate jump around.
type ProgressWithETA struct {
	*ProgressState
	numWorkers   int
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // average progress fraction per second
}

// etaSmoothing is the EMA coefficient applied to new rate samples.
const etaSmoothing = 0.3

// NewProgressWithETA creates a ProgressWithETA tracking numWorkers workers.
func NewProgressWithETA(numWorkers int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState: NewProgressState(numWorkers),
		numWorkers:    numWorkers,
		startTime:     time.Now(),
	}
}

// UpdateWithETA records a worker's progress and returns the new average
// progress along with the current ETA estimate.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()
	now := time.Now()

	if !p.lastUpdate.IsZero() {
		if dt := now.Sub(p.lastUpdate).Seconds(); dt > 0 {
			if rate := (avg - p.lastProgress) / dt; rate > 0 {
				if p.progressRate == 0 {
					p.progressRate = rate
				} else {
					p.progressRate = etaSmoothing*rate + (1-etaSmoothing)*p.progressRate
				}
			}
		}
	}
	p.lastUpdate = now
	p.lastProgress = avg

	return avg, p.GetETA()
}

// GetETA returns the estimated time remaining based on the smoothed progress
// rate. Returns 0 when no estimate is available yet.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1.0 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	return time.Duration(remaining / p.progressRate * float64(time.Second))
}

// FormatETA renders an ETA duration compactly ("45s", "2m30s", "1h15m").
// Zero and negative values render as "calculating..." since no estimate
// exists yet.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	eta = eta.Round(time.Second)
	h := int(eta.Hours())
	m := int(eta.Minutes()) % 60
	s := int(eta.Seconds()) % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatProgressBarWithETA renders a textual progress bar of the given width
// with a percentage and ETA suffix.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% | ETA: %s", ProgressBar(progress, width), progress*100, FormatETA(eta))
}

// ProgressBar generates a fixed-width textual progress bar. Values outside
// [0,1] are clamped.
func ProgressBar(progress float64, width int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(width))
	var builder strings.Builder
	builder.Grow(width)
	for i := 0; i < width; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}
