package broadcast

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotWatcherDeliversChangedSlotFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sue_ah_hahn_db_v2.json")

	w, err := NewSlotWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	var mu sync.Mutex
	var got []byte
	w.Subscribe(func(p []byte) {
		mu.Lock()
		got = append([]byte(nil), p...)
		mu.Unlock()
	})

	require.NoError(t, os.WriteFile(path, []byte(`{"version":1}`), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return string(got) == `{"version":1}`
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSlotWatcherSuppressesOwnWriteEcho(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "sue_ah_hahn_db_v2.json")

	w, err := NewSlotWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	var mu sync.Mutex
	var got []byte
	w.Subscribe(func(p []byte) {
		mu.Lock()
		got = append([]byte(nil), p...)
		mu.Unlock()
	})

	// Our own commit: Publish records it, the filesystem echo is skipped.
	own := []byte(`{"version":1}`)
	require.NoError(t, w.Publish(ctx, own))
	require.NoError(t, os.WriteFile(path, own, 0o644))

	// A sibling process then writes a different document; that one arrives.
	foreign := []byte(`{"version":2}`)
	require.NoError(t, os.WriteFile(path, foreign, 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, string(foreign), string(got))
}

func TestSlotWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sue_ah_hahn_db_v2.json")

	w, err := NewSlotWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	delivered := make(chan struct{}, 1)
	w.Subscribe(func([]byte) { delivered <- struct{}{} })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("x"), 0o644))

	select {
	case <-delivered:
		t.Fatal("watcher delivered a change for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}
