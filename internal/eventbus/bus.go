// Package eventbus is the process-wide topic hub that carries PIP lifecycle,
// control and player events between the platform layer and the coordinator.
package eventbus

import (
	"errors"
	"sync"
)

// Topic names a class of events.
type Topic string

// ErrNotRegistered is returned by Unregister when the subscriber is not
// registered on the topic.
var ErrNotRegistered = errors.New("subscriber not registered")

// Subscriber receives events posted on the topics it registered for.
type Subscriber interface {
	OnEvent(topic Topic, data any)
}

// SubscriberFunc adapts a function to Subscriber.
// Function values are not comparable, so register the pointer:
//
//	fn := eventbus.SubscriberFunc(...)
//	bus.Register(topic, &fn)
type SubscriberFunc func(topic Topic, data any)

// OnEvent calls f.
func (f *SubscriberFunc) OnEvent(topic Topic, data any) {
	(*f)(topic, data)
}

// Poster is the publishing half of the bus.
type Poster interface {
	Post(topic Topic, data any)
}

// Bus delivers events synchronously, in registration order, on the
// goroutine that posts them.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic][]Subscriber
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic][]Subscriber)}
}

// Register adds sub to topic. Registering the same subscriber twice on a
// topic is a no-op.
func (b *Bus) Register(topic Topic, sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs[topic] {
		if s == sub {
			return
		}
	}
	b.subs[topic] = append(b.subs[topic], sub)
}

// Unregister removes sub from topic.
func (b *Bus) Unregister(topic Topic, sub Subscriber) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[topic]
	for i, s := range list {
		if s != sub {
			continue
		}
		// Copy so that a Post iterating an older snapshot is unaffected.
		next := make([]Subscriber, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(b.subs, topic)
		} else {
			b.subs[topic] = next
		}
		return nil
	}
	return ErrNotRegistered
}

// Post delivers data to every subscriber of topic. Subscribers may register
// or unregister from inside OnEvent; such changes apply to the next Post.
func (b *Bus) Post(topic Topic, data any) {
	b.mu.RLock()
	list := b.subs[topic]
	b.mu.RUnlock()

	for _, s := range list {
		s.OnEvent(topic, data)
	}
}

// Subscribers returns the number of subscribers on topic.
func (b *Bus) Subscribers(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
