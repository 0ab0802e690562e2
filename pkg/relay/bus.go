// Package relay keeps preference tables in sync across running
// instances over a publish/subscribe bus. Delivery is best-effort and
// last-writer-wins; there is no versioning and no causal ordering.
package relay

import (
	"github.com/arthur-debert/dirprefs/pkg/logging"
)

// Message is one published bus message.
type Message struct {
	Topic   string
	Sender  string
	Payload []byte
}

// Handler consumes a bus message.
type Handler func(Message)

// Bus is the pub/sub channel between instances. Publish delivers
// synchronously, in subscription order, on the caller's goroutine,
// mirroring a host event loop with serialized callbacks.
type Bus struct {
	subscribers map[string][]Handler
}

// NewBus creates an empty bus. Instances that should see each other's
// updates share one bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, fn Handler) {
	b.subscribers[topic] = append(b.subscribers[topic], fn)
}

// Publish delivers the message to every subscriber of its topic,
// including the sender's own subscriptions. Filtering out self-sent
// messages is the subscriber's job.
func (b *Bus) Publish(msg Message) {
	logger := logging.GetLogger("relay.bus")
	logger.Debug().
		Str("topic", msg.Topic).
		Str("sender", msg.Sender).
		Int("subscribers", len(b.subscribers[msg.Topic])).
		Msg("Publishing message")

	for _, fn := range b.subscribers[msg.Topic] {
		fn(msg)
	}
}
