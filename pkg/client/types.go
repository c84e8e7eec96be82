package client

// Message is a simpler internal representation of a received broker message.
// ID and Payload are the fields the probe operations rely on.
type Message struct {
	ID      MessageID
	Topic   string
	Payload []byte
}

// ProducerOptions describes the producer to attach to a topic. An empty Name
// lets the broker assign one.
type ProducerOptions struct {
	Topic  string
	Name   string
	Schema SchemaDescriptor
}

// ReaderOptions describes a non-subscribing reader. Start is the position the
// first read observes when StartInclusive is set, or the position right
// before it otherwise.
type ReaderOptions struct {
	Topic          string
	Name           string
	Start          MessageID
	StartInclusive bool
}
