package workers_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/afire007/pulsar-probe/internal/probe"
	"github.com/afire007/pulsar-probe/internal/services"
	"github.com/afire007/pulsar-probe/internal/workers"
)

type stubProducerService struct {
	bootstrap func(context.Context) error
	probes    int32
	closed    int32
}

func (s *stubProducerService) Bootstrap(ctx context.Context) error {
	if s.bootstrap != nil {
		return s.bootstrap(ctx)
	}
	return nil
}

func (s *stubProducerService) Probe(ctx context.Context) { atomic.AddInt32(&s.probes, 1) }

func (s *stubProducerService) Close() { atomic.AddInt32(&s.closed, 1) }

type stubOffsetsService struct {
	checks int32
	closed int32
}

func (s *stubOffsetsService) Check(ctx context.Context) { atomic.AddInt32(&s.checks, 1) }

func (s *stubOffsetsService) Snapshot() services.OffsetsSnapshot { return services.OffsetsSnapshot{} }

func (s *stubOffsetsService) Close() { atomic.AddInt32(&s.closed, 1) }

type stubSchemaService struct {
	ensures int32
	closed  int32
}

func (s *stubSchemaService) Ensure(ctx context.Context) { atomic.AddInt32(&s.ensures, 1) }

func (s *stubSchemaService) Close() { atomic.AddInt32(&s.closed, 1) }

type stubStatusService struct {
	opened int32
	closed int32
}

func (s *stubStatusService) Open() { atomic.AddInt32(&s.opened, 1) }

func (s *stubStatusService) Close() { atomic.AddInt32(&s.closed, 1) }

func (s *stubStatusService) StatusHandler() http.Handler { return nil }

func newStubManager(probeConfig probe.Config) (workers.Worker, *stubProducerService, *stubOffsetsService, *stubSchemaService, *stubStatusService) {
	producer := &stubProducerService{}
	offsets := &stubOffsetsService{}
	schema := &stubSchemaService{}
	status := &stubStatusService{}
	logger := zerolog.Nop()

	manager := workers.NewProbeManager(probeConfig, producer, offsets, schema, status, &logger)
	return manager, producer, offsets, schema, status
}

func TestProbeManagerRunsFirstCycle(t *testing.T) {
	manager, producer, offsets, schema, status := newStubManager(probe.Config{
		ProbeInterval:               time.Hour,
		BootstrapBackoffMaxAttempts: 3,
		BootstrapBackoffScale:       time.Millisecond,
	})

	manager.Start()

	assert.EqualValues(t, 1, atomic.LoadInt32(&status.opened))
	assert.EqualValues(t, 1, atomic.LoadInt32(&schema.ensures))
	assert.EqualValues(t, 1, atomic.LoadInt32(&producer.probes))
	assert.EqualValues(t, 1, atomic.LoadInt32(&offsets.checks))

	manager.Stop()

	assert.EqualValues(t, 1, atomic.LoadInt32(&producer.closed))
	assert.EqualValues(t, 1, atomic.LoadInt32(&offsets.closed))
	assert.EqualValues(t, 1, atomic.LoadInt32(&schema.closed))
	assert.EqualValues(t, 1, atomic.LoadInt32(&status.closed))
}

func TestProbeManagerTicks(t *testing.T) {
	manager, producer, offsets, _, _ := newStubManager(probe.Config{
		ProbeInterval:               5 * time.Millisecond,
		BootstrapBackoffMaxAttempts: 3,
		BootstrapBackoffScale:       time.Millisecond,
	})

	manager.Start()

	deadline := time.Now().Add(time.Second)
	for atomic.LoadInt32(&producer.probes) < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	manager.Stop()

	assert.GreaterOrEqual(t, atomic.LoadInt32(&producer.probes), int32(3))
	assert.EqualValues(t, atomic.LoadInt32(&producer.probes), atomic.LoadInt32(&offsets.checks))
}

func TestProbeManagerBootstrapRetries(t *testing.T) {
	manager, producer, _, _, _ := newStubManager(probe.Config{
		ProbeInterval:               time.Hour,
		BootstrapBackoffMaxAttempts: 5,
		BootstrapBackoffScale:       time.Millisecond,
	})

	var attempts int32
	producer.bootstrap = func(context.Context) error {
		if atomic.AddInt32(&attempts, 1) < 3 {
			return errors.New("connect: connection refused")
		}
		return nil
	}

	manager.Start()
	manager.Stop()

	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
	assert.EqualValues(t, 1, atomic.LoadInt32(&producer.probes))
}
