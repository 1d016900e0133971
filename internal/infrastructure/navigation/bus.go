// Package navigation carries the process-wide view-change signal. It is the
// only coupling between the cart/checkout components and the top-level view
// selector: publishers do not know who renders, subscribers do not know who
// navigated.
package navigation

import (
	"sync"

	"github.com/rs/zerolog"
)

// View discriminates the top-level views of the storefront.
type View string

const (
	ViewHome     View = "home"
	ViewCheckout View = "checkout"
	ViewProfile  View = "profile"
)

// Valid reports whether v is one of the known view discriminators.
func (v View) Valid() bool {
	return v == ViewHome || v == ViewCheckout || v == ViewProfile
}

const subscriberBuffer = 16

// Bus is a small publish/subscribe channel for navigation signals.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan View
	next int
	log  zerolog.Logger
}

func NewBus(log zerolog.Logger) *Bus {
	return &Bus{subs: make(map[int]chan View), log: log}
}

// Subscribe registers a listener and returns its channel plus an unsubscribe
// function. The channel is closed on unsubscribe.
func (b *Bus) Subscribe() (<-chan View, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan View, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish broadcasts v to all subscribers. Delivery is non-blocking: a
// subscriber that has fallen more than subscriberBuffer signals behind loses
// the oldest-pending semantics and the signal is dropped with a warning.
func (b *Bus) Publish(v View) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- v:
		default:
			b.log.Warn().Int("subscriber", id).Str("view", string(v)).Msg("navigation signal dropped")
		}
	}
}
