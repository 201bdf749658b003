// Package metrics reads Go runtime statistics for display in verbose output
// and the TUI dashboard. Prometheus export lives in internal/server; this
// package only covers in-process snapshots.
package metrics

import (
	"fmt"
	"runtime"
	"time"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAllocBytes uint64        // bytes in use by the application
	SysBytes       uint64        // total bytes obtained from the OS
	HeapObjects    uint64        // number of allocated heap objects
	NumGC          uint32        // number of completed GC cycles
	PauseTotal     time.Duration // cumulative GC pause time
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAllocBytes: m.HeapAlloc,
		SysBytes:       m.Sys,
		HeapObjects:    m.HeapObjects,
		NumGC:          m.NumGC,
		PauseTotal:     time.Duration(m.PauseTotalNs),
	}
}

// String renders the snapshot compactly for log lines and the verbose
// summary footer.
func (s MemorySnapshot) String() string {
	return fmt.Sprintf("heap %s, sys %s, %d GC cycles (%s paused)",
		FormatBytes(s.HeapAllocBytes), FormatBytes(s.SysBytes), s.NumGC, s.PauseTotal.Round(time.Microsecond))
}

// FormatBytes humanizes a byte count (binary units).
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
