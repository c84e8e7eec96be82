// Package workers defines an interface for probe workers and related implementations
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/afire007/pulsar-probe/internal/probe"
	"github.com/afire007/pulsar-probe/internal/services"
)

// Worker interface exposing main operations on probe workers
type Worker interface {
	Start()
	Stop()
}

// ProbeManager defines the manager driving the producer, offsets, schema and status services
type ProbeManager struct {
	probeConfig     *probe.Config
	producerService services.ProducerService
	offsetsService  services.OffsetsService
	schemaService   services.SchemaService
	statusService   services.StatusService
	stop            chan struct{}
	syncStop        sync.WaitGroup
	logger          *zerolog.Logger
}

var (
	bootstrapFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "bootstrap_error_total",
		Namespace: "pulsar_probe",
		Help:      "Total number of errors while waiting for the cluster to accept a probe producer",
	}, nil)
)

// NewProbeManager returns an instance of the probe manager worker
func NewProbeManager(probeConfig probe.Config,
	producerService services.ProducerService, offsetsService services.OffsetsService,
	schemaService services.SchemaService, statusService services.StatusService,
	logger *zerolog.Logger) Worker {
	pm := ProbeManager{
		probeConfig:     &probeConfig,
		producerService: producerService,
		offsetsService:  offsetsService,
		schemaService:   schemaService,
		statusService:   statusService,
		logger:          logger,
	}
	return &pm
}

// Start bootstraps a first producer, runs a first probe cycle and starts a
// timer for periodic probing
func (pm *ProbeManager) Start() {
	pm.logger.Info().Msg("Starting probe manager")

	pm.stop = make(chan struct{})
	pm.syncStop.Add(1)

	pm.statusService.Open()

	// using the same bootstrap configuration that makes sense during the probe start up
	backoff := services.NewBackoff(pm.probeConfig.BootstrapBackoffMaxAttempts, pm.probeConfig.BootstrapBackoffScale, services.MaxDefault)
	for {
		// attach and detach a first producer immediately
		if err := pm.producerService.Bootstrap(context.Background()); err == nil {
			pm.logger.Info().Msg("Cluster accepted a probe producer")
			break
		} else {
			// the cluster may still be coming up, so any bootstrap error is retried
			delay, backoffErr := backoff.Delay()
			if backoffErr != nil {
				pm.logger.Fatal().Err(err).Msg("Max attempts waiting for the cluster to accept a producer")
			}
			bootstrapFailed.With(nil).Inc()
			pm.logger.Warn().Msgf("Error bootstrapping the producer. Retrying in %d ms", delay.Milliseconds())
			time.Sleep(delay)
		}
	}

	// run a first probe cycle immediately
	pm.probe(context.Background())

	pm.logger.Info().Dur("interval", pm.probeConfig.ProbeInterval).Msg("Running probe loop")
	ticker := time.NewTicker(pm.probeConfig.ProbeInterval)
	go func() {
		for {
			select {
			case <-ticker.C:
				pm.probe(context.Background())
			case <-pm.stop:
				ticker.Stop()
				defer pm.syncStop.Done()
				pm.logger.Info().Msg("Stopping probe manager loop")
				return
			}
		}
	}()
}

// Stop stops the services and the probe timer
func (pm *ProbeManager) Stop() {
	pm.logger.Info().Msg("Stopping probe manager")

	// ask to stop the ticker probe loop and wait
	close(pm.stop)
	pm.syncStop.Wait()

	pm.producerService.Close()
	pm.offsetsService.Close()
	pm.schemaService.Close()
	pm.statusService.Close()

	pm.logger.Info().Msg("Probe manager closed")
}

func (pm *ProbeManager) probe(ctx context.Context) {
	pm.logger.Info().Msg("Probe manager cycle")

	pm.schemaService.Ensure(ctx)
	pm.producerService.Probe(ctx)
	pm.offsetsService.Check(ctx)
}
