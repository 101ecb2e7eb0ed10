package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSample(t *testing.T) {
	s := Sample()
	if s.Goroutines == 0 || s.HeapAlloc == 0 {
		t.Fatalf("implausible sample %+v", s)
	}
}

func TestStartRuntimeLogger_StopsWithContext(t *testing.T) {
	var buf syncBuffer
	// default info level: -debug must produce output without -log-level debug
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, cancel := context.WithCancel(context.Background())
	StartRuntimeLogger(ctx, 10*time.Millisecond, logger)
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(buf.String(), "stats.goroutines=") {
		if time.Now().After(deadline) {
			t.Fatalf("no runtime line logged: %q", buf.String())
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !strings.Contains(buf.String(), "stats.heap_alloc=") {
		t.Fatalf("expected humanized heap size, got %q", buf.String())
	}
	cancel()
}

func TestStartRuntimeLogger_NilLogger(t *testing.T) {
	StartRuntimeLogger(context.Background(), time.Millisecond, nil)
}
