package harness

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/afire007/pulsar-probe/pkg/client"
)

// ProducedRecord pairs a published value with the position the broker
// acknowledged for it.
type ProducedRecord struct {
	Value any
	ID    client.MessageID
}

type produceOptions struct {
	partition int
	name      string
}

// ProduceOption adjusts a single ProduceTyped call.
type ProduceOption func(*produceOptions)

// WithPartition targets one partition of a partitioned topic instead of the
// topic as a whole.
func WithPartition(partition int) ProduceOption {
	return func(o *produceOptions) {
		o.partition = partition
	}
}

// WithProducerName overrides the generated producer name. Producer names are
// unique per topic, so concurrent calls must not share one.
func WithProducerName(name string) ProduceOption {
	return func(o *produceOptions) {
		o.name = name
	}
}

// Values converts a typed slice into the value sequence ProduceTyped accepts.
func Values[T any](values ...T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// ProduceTyped publishes the values in order through a producer encoding with
// the descriptor's codec, waiting for each ack before sending the next. The
// returned records preserve the argument order. On the first failed publish
// it stops and returns a PublishError carrying the records acknowledged so
// far; the values after the failing one are never sent.
//
// An empty value sequence still attaches and detaches a producer, which
// validates connectivity and the schema without publishing anything.
func (h *Harness) ProduceTyped(ctx context.Context, topic string, schema client.SchemaDescriptor, values []any, options ...ProduceOption) ([]ProducedRecord, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	config := produceOptions{partition: -1}
	for _, option := range options {
		option(&config)
	}

	target := topic
	if config.partition >= 0 {
		target = fmt.Sprintf("%s-partition-%d", topic, config.partition)
	}
	name := config.name
	if name == "" {
		name = "probe-" + uuid.NewString()
	}

	connection, err := h.connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer connection.Close()

	producer, err := connection.CreateProducer(ctx, client.ProducerOptions{
		Topic:  target,
		Name:   name,
		Schema: schema,
	})
	if err != nil {
		return nil, fmt.Errorf("create producer on %s: %w", target, err)
	}
	defer func() {
		if err := producer.Flush(); err != nil {
			h.logger.Warn().Err(err).Str("topic", target).Msg("Error flushing producer")
		}
		producer.Close()
	}()

	records := make([]ProducedRecord, 0, len(values))
	for i, value := range values {
		id, err := producer.Send(ctx, value)
		if err != nil {
			return nil, &PublishError{Topic: target, Index: i, Published: records, Err: err}
		}
		h.logger.Debug().
			Str("topic", target).
			Stringer("id", id).
			Int("index", i).
			Msg("Message published")
		records = append(records, ProducedRecord{Value: value, ID: id})
	}

	return records, nil
}
