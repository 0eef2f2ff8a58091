package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatch_RebuildOnChange(t *testing.T) {
	vaultDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	go Watch(ctx, vaultDir, 50*time.Millisecond, testLogger(), func() {
		rebuilds.Add(1)
	})

	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(vaultDir, "new.md"), []byte("# New"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return rebuilds.Load() >= 1
	}, "no rebuild after new file")
}

func TestWatch_BurstDebouncedToOneRebuild(t *testing.T) {
	vaultDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	go Watch(ctx, vaultDir, 200*time.Millisecond, testLogger(), func() {
		rebuilds.Add(1)
	})

	time.Sleep(100 * time.Millisecond)

	// A burst of writes inside the debounce window collapses to one build.
	for i := 0; i < 5; i++ {
		_ = os.WriteFile(filepath.Join(vaultDir, "burst.md"), []byte("# Burst"), 0o644)
		time.Sleep(20 * time.Millisecond)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return rebuilds.Load() >= 1
	}, "no rebuild after burst")

	// Let any stray timer fire.
	time.Sleep(500 * time.Millisecond)
	if got := rebuilds.Load(); got != 1 {
		t.Errorf("rebuilds = %d, want 1", got)
	}
}

func TestWatch_NonMarkdownIgnored(t *testing.T) {
	vaultDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	go Watch(ctx, vaultDir, 50*time.Millisecond, testLogger(), func() {
		rebuilds.Add(1)
	})

	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(vaultDir, "notes.txt"), []byte("not a note"), 0o644)

	time.Sleep(300 * time.Millisecond)
	if got := rebuilds.Load(); got != 0 {
		t.Errorf("rebuilds = %d, want 0 for non-markdown change", got)
	}
}

func TestWatch_NewDirWatched(t *testing.T) {
	vaultDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rebuilds atomic.Int32
	go Watch(ctx, vaultDir, 50*time.Millisecond, testLogger(), func() {
		rebuilds.Add(1)
	})

	time.Sleep(100 * time.Millisecond)

	subDir := filepath.Join(vaultDir, "subdir")
	_ = os.MkdirAll(subDir, 0o755)
	time.Sleep(200 * time.Millisecond)
	before := rebuilds.Load()

	_ = os.WriteFile(filepath.Join(subDir, "deep.md"), []byte("# Deep"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return rebuilds.Load() > before
	}, "file in new subdir did not trigger a rebuild")
}

func TestWatch_StopsOnCancel(t *testing.T) {
	vaultDir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, vaultDir, 50*time.Millisecond, testLogger(), func() {})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop on context cancel")
	}
}
