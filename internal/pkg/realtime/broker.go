package realtime

import (
	"sync"

	"github.com/surfsup-app/surfsup/internal/pkg/constants"
	"github.com/surfsup-app/surfsup/internal/pkg/logger"
	"github.com/surfsup-app/surfsup/internal/pkg/models"
)

// Handler receives a published message.
type Handler func(msg models.WSMessage)

// Broker fans published messages out to registered subscribers. Delivery is
// synchronous and happens in subscriber registration order. A subscriber
// panic is recovered and logged without interrupting delivery to the rest.
type Broker struct {
	mu   sync.Mutex
	subs []*subscription
}

type subscription struct {
	event   string
	fn      Handler
	removed bool
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{}
}

// Subscribe registers a handler for one event type, or for every event when
// the event is constants.EventWildcard. The returned function removes
// exactly this registration; after it returns, no subsequent publish will
// invoke the handler, including publishes already in flight.
func (b *Broker) Subscribe(event string, fn Handler) func() {
	sub := &subscription{event: event, fn: fn}

	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub.removed {
			return
		}
		sub.removed = true
		for i, s := range b.subs {
			if s == sub {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers the message to every matching subscriber.
func (b *Broker) Publish(msg models.WSMessage) {
	b.mu.Lock()
	snapshot := make([]*subscription, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, sub := range snapshot {
		b.mu.Lock()
		skip := sub.removed || (sub.event != constants.EventWildcard && sub.event != msg.Event)
		b.mu.Unlock()
		if skip {
			continue
		}

		b.deliver(sub, msg)
	}
}

func (b *Broker) deliver(sub *subscription, msg models.WSMessage) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Subscriber panicked while handling message",
				logger.String("event", msg.Event),
				logger.Any("panic", r))
		}
	}()

	sub.fn(msg)
}
