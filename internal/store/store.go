package store

import (
	"context"
	"encoding/json"
	"sync"

	"sueahahn/internal/domain/entity"
	"sueahahn/pkg/errors"
	"sueahahn/pkg/logger"
)

// Slot is the durable key-value location holding the serialized document.
// Read reports found=false when the slot has never been written.
type Slot interface {
	Read(ctx context.Context) (data []byte, found bool, err error)
	Write(ctx context.Context, data []byte) error
}

// Channel replicates the full document to every other execution context
// subscribed to the same channel. Delivery is best-effort: no acknowledgment,
// no replay, last publisher wins.
type Channel interface {
	Publish(ctx context.Context, payload []byte) error
	Subscribe(handler func(payload []byte)) (unsubscribe func())
}

// Store owns the single in-memory document. Every mutation operation commits
// through Save; peer contexts are updated through the broadcast channel.
type Store struct {
	slot    Slot
	channel Channel

	mu     sync.RWMutex
	doc    *entity.Document
	loaded bool

	subMu       sync.Mutex
	subscribers map[int]func(*entity.Document)
	nextSub     int

	unsubscribe func()
}

func New(slot Slot, channel Channel) *Store {
	return &Store{
		slot:        slot,
		channel:     channel,
		subscribers: make(map[int]func(*entity.Document)),
	}
}

// Load reads the durable slot and initializes the in-memory document. An
// absent or unreadable slot yields the empty document, never an error. Load
// also attaches the store to the broadcast channel.
func (s *Store) Load(ctx context.Context) error {
	doc := entity.Empty()

	data, found, err := s.slot.Read(ctx)
	switch {
	case err != nil:
		logger.Warn("store: slot read failed, starting from empty document: %v", err)
	case found:
		if err := json.Unmarshal(data, doc); err != nil {
			logger.Warn("store: slot holds an unreadable document, starting from empty: %v", err)
			doc = entity.Empty()
		}
	}

	s.mu.Lock()
	s.doc = doc
	s.loaded = true
	s.mu.Unlock()

	if s.channel != nil && s.unsubscribe == nil {
		s.unsubscribe = s.channel.Subscribe(s.onRemote)
	}
	return nil
}

// Loaded reports whether Load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Current returns the live document. Callers must treat it as read-only;
// mutation operations clone it before editing. Panics if the store was
// never loaded.
func (s *Store) Current() *entity.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		panic("store: Current called before Load")
	}
	return s.doc
}

// Save commits a new document: stamps the next version, persists the full
// document to the slot, swaps it into memory, publishes it to peers and
// notifies local subscribers. If the durable write fails the in-memory
// document is left untouched and the error is returned.
func (s *Store) Save(ctx context.Context, doc *entity.Document) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return errors.Internal("store is not loaded", nil)
	}
	doc.Version = s.doc.Version + 1

	payload, err := json.Marshal(doc)
	if err != nil {
		s.mu.Unlock()
		return errors.Internal("failed to serialize document", err)
	}
	if err := s.slot.Write(ctx, payload); err != nil {
		s.mu.Unlock()
		return errors.Internal("failed to persist document", err)
	}
	s.doc = doc
	s.mu.Unlock()

	if s.channel != nil {
		if err := s.channel.Publish(ctx, payload); err != nil {
			logger.Error("store: broadcast publish failed, peers will lag until the next save: %v", err)
		}
	}
	s.notify(doc)
	return nil
}

// Subscribe registers a handler invoked after every commit and after every
// applied foreign document. Returns an unsubscribe func.
func (s *Store) Subscribe(fn func(*entity.Document)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

// Close detaches the store from the broadcast channel.
func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// onRemote replaces the local document with one published by another
// context. Last writer wins: the foreign document is applied even when it
// is not newer than the local one, which is the documented lost-update
// behavior; the overwrite is logged so it stays observable. Echoes of a
// context's own slot write are filtered out by the channel, never here.
func (s *Store) onRemote(payload []byte) {
	doc := &entity.Document{}
	if err := json.Unmarshal(payload, doc); err != nil {
		logger.Error("store: dropping unreadable broadcast document: %v", err)
		return
	}

	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return
	}
	if doc.Version <= s.doc.Version {
		logger.Warn("store: applying document version %d over local version %d, a concurrent update was lost",
			doc.Version, s.doc.Version)
	}
	s.doc = doc
	s.mu.Unlock()

	s.notify(doc)
}

func (s *Store) notify(doc *entity.Document) {
	s.subMu.Lock()
	fns := make([]func(*entity.Document), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(doc)
	}
}
