package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/refgame/internal/logger"
)

func newTestWatcher(t *testing.T, dir string) *Watcher {
	t.Helper()

	w, err := NewWatcher(dir, logger.Nop())
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	return w
}

func TestWatcher_DeliversNewExperimentFile(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	path := filepath.Join(dir, "pixels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: pixels-small\n"), 0o600))

	select {
	case got := <-w.Files():
		assert.Equal(t, path, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no file delivered")
	}
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o600))

	select {
	case got := <-w.Files():
		t.Fatalf("unexpected delivery: %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_DebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	path := filepath.Join(dir, "symbolic.yml")
	f, err := os.Create(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err = f.WriteString("name: symbolic\n")
		require.NoError(t, err)
		require.NoError(t, f.Sync())
	}
	require.NoError(t, f.Close())

	select {
	case got := <-w.Files():
		assert.Equal(t, path, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no file delivered")
	}

	// A settled file is delivered exactly once.
	select {
	case got := <-w.Files():
		t.Fatalf("duplicate delivery: %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_RemovedFileIsNotDelivered(t *testing.T) {
	dir := t.TempDir()
	w := newTestWatcher(t, dir)
	w.debounce = 300 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	path := filepath.Join(dir, "doomed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: doomed\n"), 0o600))
	require.NoError(t, os.Remove(path))

	select {
	case got := <-w.Files():
		t.Fatalf("unexpected delivery: %s", got)
	case <-time.After(600 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := newTestWatcher(t, filepath.Join(t.TempDir(), "does-not-exist"))

	err := w.Start(context.Background())
	require.Error(t, err)
	assert.NoError(t, w.Stop())
}
