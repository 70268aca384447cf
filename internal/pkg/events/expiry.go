// Package events carries in-process notifications between otherwise
// decoupled components.
package events

import "sync"

// ExpiryBus fans a session-expiry signal out to every subscriber. It replaces
// the pattern of a single process-wide callback slot: any number of listeners
// may register, and registration order does not matter.
type ExpiryBus struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func NewExpiryBus() *ExpiryBus {
	return &ExpiryBus{subs: make(map[int]func())}
}

// Subscribe registers fn to be invoked on every Publish. The returned
// function removes the subscription and is safe to call more than once.
func (b *ExpiryBus) Subscribe(fn func()) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish invokes every subscriber. Callbacks run outside the bus lock, so a
// subscriber may Subscribe or unsubscribe from within its own callback.
func (b *ExpiryBus) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
