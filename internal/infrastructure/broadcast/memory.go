package broadcast

import (
	"context"
	"sync"
)

// MemoryBus connects execution contexts living in the same process. Each
// context opens its own channel handle; a publish is delivered synchronously
// to every other open handle, never back to the publisher.
type MemoryBus struct {
	mu       sync.RWMutex
	channels map[int]*MemoryChannel
	next     int
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{channels: make(map[int]*MemoryChannel)}
}

// Open registers a new context handle on the bus.
func (b *MemoryBus) Open() *MemoryChannel {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := &MemoryChannel{
		bus:      b,
		id:       b.next,
		handlers: make(map[int]func([]byte)),
	}
	b.channels[b.next] = ch
	b.next++
	return ch
}

func (b *MemoryBus) publish(from int, payload []byte) {
	b.mu.RLock()
	peers := make([]*MemoryChannel, 0, len(b.channels))
	for id, ch := range b.channels {
		if id != from {
			peers = append(peers, ch)
		}
	}
	b.mu.RUnlock()

	for _, ch := range peers {
		ch.deliver(payload)
	}
}

type MemoryChannel struct {
	bus *MemoryBus
	id  int

	mu       sync.Mutex
	handlers map[int]func([]byte)
	next     int
	closed   bool
}

func (c *MemoryChannel) Publish(_ context.Context, payload []byte) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil
	}
	c.bus.publish(c.id, payload)
	return nil
}

func (c *MemoryChannel) Subscribe(handler func(payload []byte)) func() {
	c.mu.Lock()
	id := c.next
	c.next++
	c.handlers[id] = handler
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.handlers, id)
		c.mu.Unlock()
	}
}

func (c *MemoryChannel) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.bus.mu.Lock()
	delete(c.bus.channels, c.id)
	c.bus.mu.Unlock()
	return nil
}

func (c *MemoryChannel) deliver(payload []byte) {
	c.mu.Lock()
	fns := make([]func([]byte), 0, len(c.handlers))
	for _, fn := range c.handlers {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(payload)
	}
}
