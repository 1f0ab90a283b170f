package stream

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// DefaultEventBuffer is the per-subscriber backlog used when a hub is
// created with a non-positive buffer size.
const DefaultEventBuffer = 32

// Hub fans decoded events out to any number of subscribers. Publishing never
// blocks: each subscriber owns a bounded buffer and events beyond that
// backlog are dropped for the slow subscriber only. Subscribers attaching
// after an event was published never see it.
type Hub[E any] struct {
	mu      sync.RWMutex
	subs    map[uuid.UUID]chan E
	buffer  int
	dropped atomic.Int64
}

// NewHub creates a hub whose subscribers buffer up to buffer events each.
func NewHub[E any](buffer int) *Hub[E] {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	return &Hub[E]{
		subs:   make(map[uuid.UUID]chan E),
		buffer: buffer,
	}
}

// Subscribe attaches a new subscriber and returns its receive channel
// together with a cancel function. Cancelling removes the subscriber and
// closes the channel; it is safe to call more than once.
func (h *Hub[E]) Subscribe() (<-chan E, func()) {
	ch := make(chan E, h.buffer)
	id := uuid.New()

	h.mu.Lock()
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			close(ch)
			h.mu.Unlock()
		})
	}

	return ch, cancel
}

// Publish delivers event to every current subscriber without blocking.
// A subscriber with a full buffer misses the event.
func (h *Hub[E]) Publish(event E) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
			h.dropped.Add(1)
		}
	}
}

// Dropped returns how many per-subscriber deliveries were skipped because of
// a full buffer. Exposed for logs and tests; not part of the delivery
// contract.
func (h *Hub[E]) Dropped() int64 {
	return h.dropped.Load()
}
