package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dublyo/dockergen/internal/watch"
)

func start(t *testing.T, dir string, opts ...watch.Option) <-chan struct{} {
	t.Helper()
	w, err := watch.New(dir, append([]watch.Option{watch.WithDebounce(30 * time.Millisecond)}, opts...)...)
	require.NoError(t, err)

	calls := make(chan struct{}, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(context.Context) error {
			calls <- struct{}{}
			return nil
		})
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return calls
}

func TestRunFiresAfterChange(t *testing.T) {
	dir := t.TempDir()
	calls := start(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0o644))

	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not called")
	}
}

func TestRunDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	w, err := watch.New(dir, watch.WithDebounce(200*time.Millisecond))
	require.NoError(t, err)

	var n atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(context.Context) error {
			n.Add(1)
			return nil
		})
	}()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte{byte(i)}, 0o644))
	}

	assert.Eventually(t, func() bool { return n.Load() >= 1 }, 3*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), n.Load())

	cancel()
	<-done
}

func TestRunIgnoresOutputFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "Dockerfile")
	calls := start(t, dir, watch.WithIgnore(output))

	require.NoError(t, os.WriteFile(output, []byte("FROM alpine\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".Dockerfile.tmp-123"), []byte("x"), 0o644))

	select {
	case <-calls:
		t.Fatal("ignored paths triggered the callback")
	case <-time.After(300 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>"), 0o644))
	select {
	case <-calls:
	case <-time.After(3 * time.Second):
		t.Fatal("callback not called")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := watch.New(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
