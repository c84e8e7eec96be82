package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/afire007/pulsar-probe/internal/probe"
	"github.com/afire007/pulsar-probe/pkg/harness"
)

var schemaRegistrations *prometheus.CounterVec

type schemaService struct {
	prober      Prober
	probeConfig *probe.Config
	logger      *zerolog.Logger
	registered  bool
}

func NewSchemaService(prober Prober, probeConfig probe.Config, logger *zerolog.Logger) SchemaService {
	schemaRegistrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:        "schema_registrations_total",
		Namespace:   metricsNamespace,
		Help:        "Total number of schema registration attempts by outcome",
		ConstLabels: prometheus.Labels{"topic": probeConfig.Topic},
	}, []string{"outcome"})

	serviceLogger := logger.With().
		Str("probeService", "schema").
		Str("topic", probeConfig.Topic).
		Logger()

	return &schemaService{
		prober:      prober,
		probeConfig: &probeConfig,
		logger:      &serviceLogger,
	}
}

// Ensure registers the probe schema on the topic. Registration is idempotent
// on the broker side; once it is accepted the call becomes a no-op. A topic
// the broker does not know yet keeps the registration pending for the next
// cycle.
func (s *schemaService) Ensure(ctx context.Context) {
	if s.registered {
		return
	}

	result, err := s.prober.RegisterSchema(ctx, s.probeConfig.Topic, probeSchema())
	if err != nil {
		schemaRegistrations.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("Error registering schema")
		return
	}

	schemaRegistrations.WithLabelValues(result.String()).Inc()
	if result == harness.SchemaRegistered {
		s.registered = true
		s.logger.Info().Msg("Schema registered")
	}
}

func (s *schemaService) Close() {
	s.logger.Info().Msg("Service closed")
}
