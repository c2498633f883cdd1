// ABOUTME: Synchronous change-notification bus for state containers.
// ABOUTME: Subscribers receive events in subscription order, per mutation.
package notify

import "sync"

// Kind identifies which slice of state changed.
type Kind string

const (
	KindSession  Kind = "session"
	KindWorkouts Kind = "workouts"
	KindProgress Kind = "progress"
	KindHealth   Kind = "health"
	KindSocial   Kind = "social"
	KindSettings Kind = "settings"
)

// Event is published after each successful mutation.
type Event struct {
	Kind Kind
}

type subscriber struct {
	id int
	fn func(Event)
}

// Bus delivers events synchronously on the publisher's goroutine.
// Delivery order matches subscription order, and events from one
// mutation are fully delivered before the mutation returns.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler and returns its unsubscribe function.
func (b *Bus) Subscribe(fn func(Event)) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every subscriber in order. Handlers
// run outside the bus lock so they may publish or subscribe themselves.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(e)
	}
}
