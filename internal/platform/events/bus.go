// Package events carries the "something changed" signal between the
// payslip writer and the history readers. The signal has no payload;
// a receiver re-queries the store.
package events

import "sync"

type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]chan struct{}
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan struct{})}
}

// Subscribe returns a signal channel and a cancel function. The channel
// has a buffer of one; signals arriving while a previous one is pending
// coalesce, which is enough because receivers reload everything anyway.
func (b *Bus) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish notifies every subscriber without blocking.
func (b *Bus) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
