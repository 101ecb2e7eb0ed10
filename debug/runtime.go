package debug

// Runtime metrics logger, started only when config.Debug is true. Emits
// goroutine count along with heap and stack usage at a fixed interval.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats is one sample of runtime usage.
type Stats struct {
	Goroutines uint64
	HeapAlloc  uint64
	HeapSys    uint64
	StackInuse uint64
	NumGC      uint32
}

// Sample reads the current runtime stats.
func Sample() Stats {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := Stats{
		HeapAlloc:  ms.HeapAlloc,
		HeapSys:    ms.HeapSys,
		StackInuse: ms.StackInuse,
		NumGC:      ms.NumGC,
	}
	if samples[0].Value.Kind() == metrics.KindUint64 {
		s.Goroutines = samples[0].Value.Uint64()
	}
	return s
}

// LogValue renders sizes in human units.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("goroutines", s.Goroutines),
		slog.String("heap_alloc", humanize.IBytes(s.HeapAlloc)),
		slog.String("heap_sys", humanize.IBytes(s.HeapSys)),
		slog.String("stack_inuse", humanize.IBytes(s.StackInuse)),
		slog.Any("gc_cycles", s.NumGC),
	)
}

// StartRuntimeLogger logs a Sample every interval until ctx is done.
func StartRuntimeLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logger.Info("runtime", "stats", Sample())
			}
		}
	}()
}
