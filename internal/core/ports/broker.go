package ports

import "context"

// Message is a single record to publish to the message broker.
type Message struct {
	Topic   string
	Key     string
	Value   []byte
	Headers map[string]string
}

// MessageBroker publishes structured events to an external broker. The
// connection is owned by the process entry point and injected; there is no
// package-level singleton.
type MessageBroker interface {
	SendMessage(ctx context.Context, msg Message) error
	Close() error
}
