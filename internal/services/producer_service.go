package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/afire007/pulsar-probe/internal/probe"
	"github.com/afire007/pulsar-probe/pkg/harness"
)

var (
	metricsNamespace = "pulsar_probe"

	// RecordsProducedCounter counts the records acknowledged since startup.
	// The status sampler polls it from its own goroutine, so access goes
	// through sync/atomic.
	RecordsProducedCounter uint64 = 0
	// RecordsProducedFailedCounter counts the records that were part of a
	// probe batch but never acknowledged.
	RecordsProducedFailedCounter uint64 = 0

	recordsProduced        *prometheus.CounterVec
	recordsProducedFailed  *prometheus.CounterVec
	recordsProducedLatency *prometheus.HistogramVec
)

type producerService struct {
	prober      Prober
	probeConfig *probe.Config
	logger      *zerolog.Logger
	// index of the next message to send
	index int
}

func NewProducerService(prober Prober, probeConfig probe.Config, logger *zerolog.Logger) ProducerService {
	recordsProduced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:        "records_produced_total",
		Namespace:   metricsNamespace,
		Help:        "The total number of records produced",
		ConstLabels: prometheus.Labels{"clientid": probeConfig.ClientID},
	}, []string{"topic"})

	recordsProducedFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:        "records_produced_failed_total",
		Namespace:   metricsNamespace,
		Help:        "The total number of records failed to produce",
		ConstLabels: prometheus.Labels{"clientid": probeConfig.ClientID},
	}, []string{"topic"})

	recordsProducedLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "records_produced_latency",
		Namespace:   metricsNamespace,
		Help:        "Probe batch publish latency in milliseconds",
		Buckets:     probeConfig.ProducerLatencyBuckets,
		ConstLabels: prometheus.Labels{"clientid": probeConfig.ClientID},
	}, []string{"topic"})

	serviceLogger := logger.With().
		Str("probeService", "producer").
		Str("topic", probeConfig.Topic).
		Str("clientId", probeConfig.ClientID).
		Logger()

	serviceLogger.Info().Msg("Created producer service")

	return &producerService{
		prober:      prober,
		probeConfig: &probeConfig,
		logger:      &serviceLogger,
	}
}

// Bootstrap attaches and detaches a producer without publishing, validating
// that the cluster accepts producers on the probe topic.
func (s *producerService) Bootstrap(ctx context.Context) error {
	_, err := s.prober.ProduceTyped(ctx, s.probeConfig.Topic, probeSchema(), nil)
	return err
}

// Probe publishes a batch of probe messages and records the outcome. A batch
// that fails partway still accounts the records acknowledged before the
// failure.
func (s *producerService) Probe(ctx context.Context) {
	count := s.probeConfig.MessagesPerProbe
	if count < 1 {
		count = 1
	}

	values := make([]any, 0, count)
	for i := 0; i < count; i++ {
		value := s.newProbeMessage()
		s.logger.Debug().
			Str("value", value.String()).
			Msg("Sending message")
		values = append(values, value.JSON())
	}

	topic := s.probeConfig.Topic
	start := time.Now()
	records, err := s.prober.ProduceTyped(ctx, topic, probeSchema(), values)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		acknowledged := 0
		var publishErr *harness.PublishError
		if errors.As(err, &publishErr) {
			acknowledged = len(publishErr.Published)
		}
		failed := count - acknowledged

		recordsProduced.WithLabelValues(topic).Add(float64(acknowledged))
		recordsProducedFailed.WithLabelValues(topic).Add(float64(failed))
		atomic.AddUint64(&RecordsProducedCounter, uint64(acknowledged))
		atomic.AddUint64(&RecordsProducedFailedCounter, uint64(failed))

		s.logger.Warn().
			Int("acknowledged", acknowledged).
			Int("failed", failed).
			Msgf("Error sending messages: %v", err)
		return
	}

	recordsProduced.WithLabelValues(topic).Add(float64(len(records)))
	recordsProducedLatency.WithLabelValues(topic).Observe(float64(duration))
	atomic.AddUint64(&RecordsProducedCounter, uint64(len(records)))

	s.logger.Info().
		Int("records", len(records)).
		Int64("duration", duration).
		Msg("Messages sent")
}

func (s *producerService) Close() {
	s.logger.Info().Msg("Service closed")
}

func (s *producerService) newProbeMessage() ProbeMessage {
	s.index++
	timestamp := time.Now().UnixMilli()
	pm := ProbeMessage{
		ProducerID: s.probeConfig.ClientID,
		MessageID:  s.index,
		Timestamp:  timestamp,
	}
	return pm
}
