package events

// EventPublisher defines the interface for sending change events.
// The datasource depends on this behavior rather than on the Broker.
type EventPublisher interface {
	// SendEvent hands an event to the publisher without blocking
	SendEvent(event Event) error

	// Close stops delivery and releases subscribers
	Close() error
}

// Compile-time verification that *Broker implements EventPublisher
var _ EventPublisher = (*Broker)(nil)
