package events

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultBuffer is the queue length used when Subscribe is given a non-positive buffer
const DefaultBuffer = 16

type subscriber struct {
	ch       chan Event
	apiaryID int64 // 0 = all apiaries
}

// Broker fans events out to in-process subscribers.
// Delivery never blocks the sender: an event that does not fit a
// subscriber's queue is dropped for that subscriber and counted.
type Broker struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	nextID int
	closed bool

	sequence atomic.Int64
	dropped  atomic.Int64
}

// NewBroker creates a broker with no subscribers
func NewBroker() *Broker {
	return &Broker{subs: make(map[int]*subscriber)}
}

// Subscribe registers a subscriber for every event. The returned function
// unsubscribes and closes the channel; it is safe to call more than once.
func (b *Broker) Subscribe(buffer int) (<-chan Event, func()) {
	return b.SubscribeApiary(0, buffer)
}

// SubscribeApiary registers a subscriber for events of one apiary.
// Events that concern every apiary are always delivered. apiaryID 0 means all.
func (b *Broker) SubscribeApiary(apiaryID int64, buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = &subscriber{ch: ch, apiaryID: apiaryID}

	var once sync.Once
	return ch, func() {
		once.Do(func() { b.unsubscribe(id) })
	}
}

func (b *Broker) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if sub, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(sub.ch)
	}
}

// SendEvent stamps the event with the next sequence id and, if unset, the
// current time, then delivers it to every matching subscriber.
func (b *Broker) SendEvent(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for _, sub := range b.subs {
		if sub.apiaryID != 0 && !event.Broad() && sub.apiaryID != event.ApiaryID {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
	return nil
}

// Dropped returns how many deliveries were skipped because a queue was full
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}

// Subscribers returns the number of active subscribers
func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close closes every subscriber channel. Later sends return ErrClosed.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
	return nil
}
