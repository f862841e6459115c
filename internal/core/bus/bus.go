package bus

import "sync"

// Event is a single published message.
type Event struct {
	// Type names the event kind, e.g. "feed.entry" or "riskzone.created".
	Type string
	// Data is the event payload.
	Data interface{}
}

// Bus is a small in-process topic-based publish/subscribe hub. It replaces
// the fixed-interval polling of the original dashboard with push delivery:
// the feed scheduler and the risk zone service publish, the HTTP layer and
// tests subscribe. Slow subscribers are skipped rather than blocking the
// publisher.
type Bus struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{} // topic -> set of channels
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[string]map[chan Event]struct{})}
}

// Subscribe registers a new subscriber channel on the topic.
// The channel is buffered; the caller must Unsubscribe when done.
func (b *Bus) Subscribe(topic string) chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[chan Event]struct{})
	}
	b.subs[topic][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the channel from the topic and closes it.
func (b *Bus) Unsubscribe(topic string, ch chan Event) {
	b.mu.Lock()
	if m := b.subs[topic]; m != nil {
		delete(m, ch)
		if len(m) == 0 {
			delete(b.subs, topic)
		}
	}
	b.mu.Unlock()
	close(ch)
}

// Publish delivers the event to every subscriber of the topic.
// Subscribers with a full buffer are skipped.
func (b *Bus) Publish(topic string, evt Event) {
	b.mu.Lock()
	for ch := range b.subs[topic] {
		select {
		case ch <- evt:
		default:
		}
	}
	b.mu.Unlock()
}
