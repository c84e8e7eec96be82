package services

import (
	"context"
	"net/http"

	"github.com/afire007/pulsar-probe/pkg/client"
	"github.com/afire007/pulsar-probe/pkg/harness"
)

//go:generate mockery --name Prober --with-expecter --output ./mocks

// Prober is the slice of harness operations the probe services drive.
type Prober interface {
	ProduceTyped(ctx context.Context, topic string, schema client.SchemaDescriptor, values []any, options ...harness.ProduceOption) ([]harness.ProducedRecord, error)
	ResolveEarliest(ctx context.Context, topics ...string) (map[string]client.MessageID, error)
	ResolveLatest(ctx context.Context, topics ...string) (map[string]client.MessageID, error)
	TopicSizes(ctx context.Context, namespace string) ([]harness.TopicSize, error)
	RegisterSchema(ctx context.Context, topic string, schema client.SchemaDescriptor) (harness.RegistrationResult, error)
}

var _ Prober = (*harness.Harness)(nil)

type StatusService interface {
	Open()
	Close()
	StatusHandler() http.Handler
}

type ProducerService interface {
	Bootstrap(context.Context) error
	Probe(context.Context)
	Close()
}

type OffsetsService interface {
	Check(context.Context)
	Snapshot() OffsetsSnapshot
	Close()
}

type SchemaService interface {
	Ensure(context.Context)
	Close()
}
