package broadcast

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"sueahahn/pkg/logger"
)

// SlotWatcher turns the durable slot file itself into the broadcast medium
// for sibling processes sharing one data directory: a committed save is
// already on disk, so Publish only records the payload for echo filtering,
// and filesystem notifications on the slot file deliver the new document
// to every watching process.
type SlotWatcher struct {
	watcher *fsnotify.Watcher
	path    string

	mu       sync.Mutex
	handlers map[int]func([]byte)
	next     int
	lastPub  []byte

	done chan struct{}
}

func NewSlotWatcher(path string) (*SlotWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &SlotWatcher{
		watcher:  fw,
		path:     path,
		handlers: make(map[int]func([]byte)),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Publish records the payload this context just wrote to the slot. The
// slot write itself is the publication; the record lets run skip the
// filesystem echo of our own write so only foreign documents are
// delivered. If the echo races ahead of this call it re-delivers an
// identical document, which is harmless.
func (w *SlotWatcher) Publish(_ context.Context, payload []byte) error {
	w.mu.Lock()
	w.lastPub = append(w.lastPub[:0], payload...)
	w.mu.Unlock()
	return nil
}

func (w *SlotWatcher) Subscribe(handler func(payload []byte)) func() {
	w.mu.Lock()
	id := w.next
	w.next++
	w.handlers[id] = handler
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.handlers, id)
		w.mu.Unlock()
	}
}

func (w *SlotWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *SlotWatcher) run() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			// The file bucket writes to a temp name and renames over the
			// slot, which surfaces as Create on the final path.
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			data, err := os.ReadFile(w.path)
			if err != nil {
				logger.Warn("slot watcher: cannot read changed slot file: %v", err)
				continue
			}
			if w.isOwnWrite(data) {
				continue
			}
			w.deliver(data)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("slot watcher: %v", err)

		case <-w.done:
			return
		}
	}
}

func (w *SlotWatcher) isOwnWrite(data []byte) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastPub != nil && bytes.Equal(data, w.lastPub)
}

func (w *SlotWatcher) deliver(payload []byte) {
	w.mu.Lock()
	fns := make([]func([]byte), 0, len(w.handlers))
	for _, fn := range w.handlers {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(payload)
	}
}
