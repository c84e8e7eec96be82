package client

import (
	"context"

	"github.com/apache/pulsar-client-go/pulsar"
)

var _ Connection = (*pulsarConnection)(nil)

type pulsarConnection struct {
	client pulsar.Client
}

func (c *pulsarConnection) CreateProducer(_ context.Context, options ProducerOptions) (Producer, error) {
	schema, err := buildSchema(options.Schema)
	if err != nil {
		return nil, err
	}

	// Batching is disabled so every ack maps to exactly one entry.
	producer, err := c.client.CreateProducer(pulsar.ProducerOptions{
		Topic:           options.Topic,
		Name:            options.Name,
		Schema:          schema,
		DisableBatching: true,
	})
	if err != nil {
		return nil, err
	}

	return &pulsarProducer{producer: producer}, nil
}

func (c *pulsarConnection) CreateReader(_ context.Context, options ReaderOptions) (Reader, error) {
	reader, err := c.client.CreateReader(pulsar.ReaderOptions{
		Topic:                   options.Topic,
		Name:                    options.Name,
		StartMessageID:          toPulsarMessageID(options.Start),
		StartMessageIDInclusive: options.StartInclusive,
	})
	if err != nil {
		return nil, err
	}

	return &pulsarReader{reader: reader}, nil
}

func (c *pulsarConnection) Close() {
	c.client.Close()
}

var _ Producer = (*pulsarProducer)(nil)

type pulsarProducer struct {
	producer pulsar.Producer
}

func (p *pulsarProducer) Send(ctx context.Context, value any) (MessageID, error) {
	id, err := p.producer.Send(ctx, &pulsar.ProducerMessage{Value: value})
	if err != nil {
		return MessageID{}, err
	}
	return fromPulsarMessageID(id), nil
}

func (p *pulsarProducer) Flush() error {
	return p.producer.Flush()
}

func (p *pulsarProducer) Close() {
	p.producer.Close()
}

var _ Reader = (*pulsarReader)(nil)

type pulsarReader struct {
	reader pulsar.Reader
}

func (r *pulsarReader) Next(ctx context.Context) (Message, error) {
	message, err := r.reader.Next(ctx)
	if err != nil {
		return Message{}, err
	}
	return Message{
		ID:      fromPulsarMessageID(message.ID()),
		Topic:   message.Topic(),
		Payload: message.Payload(),
	}, nil
}

func (r *pulsarReader) Close() {
	r.reader.Close()
}

func fromPulsarMessageID(id pulsar.MessageID) MessageID {
	return MessageID{
		LedgerID:  id.LedgerID(),
		EntryID:   id.EntryID(),
		Partition: id.PartitionIdx(),
		BatchIdx:  id.BatchIdx(),
	}
}

func toPulsarMessageID(id MessageID) pulsar.MessageID {
	if id == Earliest {
		return pulsar.EarliestMessageID()
	}
	return pulsar.NewMessageID(id.LedgerID, id.EntryID, id.BatchIdx, id.Partition)
}
