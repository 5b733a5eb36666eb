// Package eventbus is a minimal in-process data-changed signal. Publishing is
// fire-and-forget: slow subscribers drop notifications instead of blocking the
// publishing operation.
package eventbus

import "sync"

// Bus fans a payload-free notification out to subscribers.
type Bus struct {
	mu   sync.RWMutex
	subs []chan struct{}
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers a new subscriber and returns its notification channel.
// The buffer absorbs bursts; a full channel drops the notification.
func (b *Bus) Subscribe(buffer int) <-chan struct{} {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan struct{}, buffer)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish notifies all subscribers without blocking.
func (b *Bus) Publish() {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
