package services

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/afire007/pulsar-probe/internal/probe"
	"github.com/afire007/pulsar-probe/pkg/client"
	"github.com/afire007/pulsar-probe/pkg/harness"
)

var (
	offsetsResolutionError *prometheus.CounterVec
	offsetsRegression      *prometheus.CounterVec
	topicLatestLedger      *prometheus.GaugeVec
	topicLatestEntry       *prometheus.GaugeVec
)

// OffsetsSnapshot reports the positions resolved by the last offsets check.
type OffsetsSnapshot struct {
	Topic    string              `json:"topic"`
	Earliest *client.MessageID   `json:"earliest,omitempty"`
	Latest   *client.MessageID   `json:"latest,omitempty"`
	Sizes    []harness.TopicSize `json:"sizes,omitempty"`
}

type offsetsService struct {
	prober      Prober
	probeConfig *probe.Config
	logger      *zerolog.Logger

	mtx      sync.Mutex
	earliest *client.MessageID
	latest   *client.MessageID
	sizes    []harness.TopicSize
}

func NewOffsetsService(prober Prober, probeConfig probe.Config, logger *zerolog.Logger) OffsetsService {
	offsetsResolutionError = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:        "offsets_resolution_error_total",
		Namespace:   metricsNamespace,
		Help:        "Total number of errors while resolving topic positions",
		ConstLabels: prometheus.Labels{"topic": probeConfig.Topic},
	}, []string{"op"})

	offsetsRegression = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:        "offsets_regression_total",
		Namespace:   metricsNamespace,
		Help:        "Total number of times the latest position moved backwards",
		ConstLabels: prometheus.Labels{"topic": probeConfig.Topic},
	}, nil)

	topicLatestLedger = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name:        "topic_latest_ledger",
		Namespace:   metricsNamespace,
		Help:        "Ledger of the normalized latest position of the probe topic",
		ConstLabels: prometheus.Labels{"topic": probeConfig.Topic},
	}, nil)

	topicLatestEntry = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name:        "topic_latest_entry",
		Namespace:   metricsNamespace,
		Help:        "Entry of the normalized latest position of the probe topic",
		ConstLabels: prometheus.Labels{"topic": probeConfig.Topic},
	}, nil)

	serviceLogger := logger.With().
		Str("probeService", "offsets").
		Str("topic", probeConfig.Topic).
		Logger()

	return &offsetsService{
		prober:      prober,
		probeConfig: &probeConfig,
		logger:      &serviceLogger,
	}
}

// Check resolves the latest position of the probe topic and flags it moving
// backwards. The earliest position is resolved once records exist, and the
// namespace sizes are refreshed when a namespace is configured.
func (s *offsetsService) Check(ctx context.Context) {
	latest, err := s.prober.ResolveLatest(ctx, s.probeConfig.Topic)
	if err != nil {
		// If we lost the connection, retry on the next cycle
		if client.IsTransientNetworkError(err) {
			s.logger.Warn().Err(err).Msg("Connection lost resolving latest position")
			return
		}
		offsetsResolutionError.WithLabelValues(string(harness.ResolveOpLatest)).Inc()
		s.logger.Error().Err(err).Msg("Error resolving latest position")
		return
	}
	position := latest[s.probeConfig.Topic]

	s.mtx.Lock()
	if s.latest != nil && position.Compare(*s.latest) < 0 {
		offsetsRegression.WithLabelValues().Inc()
		s.logger.Warn().
			Stringer("previous", s.latest).
			Stringer("current", position).
			Msg("Latest position moved backwards")
	}
	s.latest = &position
	s.mtx.Unlock()

	topicLatestLedger.WithLabelValues().Set(float64(position.LedgerID))
	topicLatestEntry.WithLabelValues().Set(float64(position.EntryID))
	s.logger.Debug().Stringer("latest", position).Msg("Checked latest position")

	s.checkEarliest(ctx)
	s.checkNamespace(ctx)
}

func (s *offsetsService) Snapshot() OffsetsSnapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	snapshot := OffsetsSnapshot{
		Topic: s.probeConfig.Topic,
		Sizes: s.sizes,
	}
	if s.earliest != nil {
		earliest := *s.earliest
		snapshot.Earliest = &earliest
	}
	if s.latest != nil {
		latest := *s.latest
		snapshot.Latest = &latest
	}
	return snapshot
}

func (s *offsetsService) Close() {
	s.logger.Info().Msg("Service closed")
}

// checkEarliest resolves the first retained position once. The read blocks on
// an empty topic, so it waits for the first acknowledged record and bounds
// the read with a timeout.
func (s *offsetsService) checkEarliest(ctx context.Context) {
	s.mtx.Lock()
	resolved := s.earliest != nil
	s.mtx.Unlock()
	if resolved || atomic.LoadUint64(&RecordsProducedCounter) == 0 {
		return
	}

	readCtx := ctx
	if s.probeConfig.EarliestReadTimeout > 0 {
		var cancel context.CancelFunc
		readCtx, cancel = context.WithTimeout(ctx, s.probeConfig.EarliestReadTimeout)
		defer cancel()
	}

	earliest, err := s.prober.ResolveEarliest(readCtx, s.probeConfig.Topic)
	if err != nil {
		// A reader connection dropped mid-read is retried on the next cycle
		if client.IsTransientNetworkError(err) || client.IsDisconnection(err) {
			s.logger.Warn().Err(err).Msg("Connection lost resolving earliest position")
			return
		}
		offsetsResolutionError.WithLabelValues(string(harness.ResolveOpEarliest)).Inc()
		s.logger.Error().Err(err).Msg("Error resolving earliest position")
		return
	}
	position := earliest[s.probeConfig.Topic]

	s.mtx.Lock()
	s.earliest = &position
	s.mtx.Unlock()

	s.logger.Info().Stringer("earliest", position).Msg("Resolved earliest position")
}

func (s *offsetsService) checkNamespace(ctx context.Context) {
	if s.probeConfig.Namespace == "" {
		return
	}

	sizes, err := s.prober.TopicSizes(ctx, s.probeConfig.Namespace)
	if err != nil {
		if client.IsTransientNetworkError(err) {
			s.logger.Warn().Err(err).Msg("Connection lost resolving namespace topic sizes")
			return
		}
		offsetsResolutionError.WithLabelValues(string(harness.ResolveOpLatest)).Inc()
		s.logger.Error().Err(err).Msg("Error resolving namespace topic sizes")
		return
	}

	s.mtx.Lock()
	s.sizes = sizes
	s.mtx.Unlock()

	s.logger.Debug().Int("topics", len(sizes)).Msg("Refreshed namespace topic sizes")
}
