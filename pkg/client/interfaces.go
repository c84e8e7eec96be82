package client

import "context"

// Connector hands out short-lived data plane and admin plane sessions. Every
// probe operation acquires its own session and releases it before returning.
//
//go:generate mockery --name Connector --with-expecter --output ./mocks
type Connector interface {
	Connect(ctx context.Context) (Connection, error)
	ConnectAdmin(ctx context.Context) (AdminSession, error)
}

// Connection is a data plane session able to attach producers and readers.
//
//go:generate mockery --name Connection --with-expecter --output ./mocks
type Connection interface {
	CreateProducer(ctx context.Context, options ProducerOptions) (Producer, error)
	CreateReader(ctx context.Context, options ReaderOptions) (Reader, error)
	Close()
}

// Producer publishes single values and reports the position assigned to each.
//
//go:generate mockery --name Producer --with-expecter --output ./mocks
type Producer interface {
	Send(ctx context.Context, value any) (MessageID, error)
	Flush() error
	Close()
}

// Reader iterates a topic from a fixed start position without a subscription.
//
//go:generate mockery --name Reader --with-expecter --output ./mocks
type Reader interface {
	Next(ctx context.Context) (Message, error)
	Close()
}

// AdminSession exposes the management plane queries the probe relies on.
//
//go:generate mockery --name AdminSession --with-expecter --output ./mocks
type AdminSession interface {
	LastMessageID(ctx context.Context, topic string) (MessageID, error)
	ListTopics(ctx context.Context, namespace string) ([]string, error)
	RegisterSchema(ctx context.Context, topic string, schema SchemaDescriptor) error
	Close()
}
