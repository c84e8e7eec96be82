package services

import (
	"encoding/json"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/afire007/pulsar-probe/internal/probe"
	"github.com/afire007/pulsar-probe/internal/services/util"
)

// Status defines useful status related information
type Status struct {
	Producing ProducingStatus
	Offsets   OffsetsSnapshot
}

// ProducingStatus defines producing related status information
type ProducingStatus struct {
	TimeWindow time.Duration
	Percentage float64
}

type statusService struct {
	probeConfig    *probe.Config
	offsetsService OffsetsService

	mtx             sync.Mutex
	attemptsSamples *util.TimeWindowRing
	ackedSamples    *util.TimeWindowRing

	stop     chan struct{}
	syncStop sync.WaitGroup
	logger   *zerolog.Logger
}

func NewStatusService(probeConfig probe.Config, offsetsService OffsetsService, logger *zerolog.Logger) StatusService {
	serviceLogger := logger.With().
		Str("probeService", "status").
		Logger()

	return &statusService{
		probeConfig:     &probeConfig,
		offsetsService:  offsetsService,
		attemptsSamples: util.NewTimeWindowRing(probeConfig.StatusTimeWindow, probeConfig.StatusCheckInterval),
		ackedSamples:    util.NewTimeWindowRing(probeConfig.StatusTimeWindow, probeConfig.StatusCheckInterval),
		logger:          &serviceLogger,
	}
}

// Open starts sampling the producer counters on the status check interval
func (s *statusService) Open() {
	s.stop = make(chan struct{})
	s.syncStop.Add(1)

	ticker := time.NewTicker(s.probeConfig.StatusCheckInterval)
	go func() {
		for {
			select {
			case <-ticker.C:
				acked := atomic.LoadUint64(&RecordsProducedCounter)
				failed := atomic.LoadUint64(&RecordsProducedFailedCounter)
				s.mtx.Lock()
				s.ackedSamples.PutValue(acked)
				s.attemptsSamples.PutValue(acked + failed)
				s.mtx.Unlock()
			case <-s.stop:
				ticker.Stop()
				defer s.syncStop.Done()
				s.logger.Info().Msg("Stopping status sampling loop")
				return
			}
		}
	}()

	s.logger.Info().Msg("Status service open")
}

func (s *statusService) Close() {
	close(s.stop)
	s.syncStop.Wait()
	s.logger.Info().Msg("Status service closed")
}

func (s *statusService) StatusHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		status := Status{}

		// update producing related status section
		s.mtx.Lock()
		status.Producing = ProducingStatus{
			TimeWindow: s.probeConfig.StatusCheckInterval * time.Duration(s.ackedSamples.Count()),
		}
		ackedPercentage, err := s.ackedPercentage()
		s.mtx.Unlock()
		if e, ok := err.(*util.ErrNoDataSamples); ok {
			status.Producing.Percentage = -1
			s.logger.Error().Err(err).Msgf("Error processing produced records percentage: %v", e)
		} else {
			status.Producing.Percentage = ackedPercentage
		}

		status.Offsets = s.offsetsService.Snapshot()

		json, _ := json.Marshal(status)
		rw.Header().Add("Content-Type", "application/json")
		rw.Write(json)
	})
}

// ackedPercentage function processes the percentage of acknowledged records in the specified time window
func (s *statusService) ackedPercentage() (float64, error) {
	// sampling for produced records not done yet
	if s.attemptsSamples.IsEmpty() {
		return 0, &util.ErrNoDataSamples{}
	}

	// number of records acknowledged and attempted since the beginning of the time window (tail of ring buffers)
	acked := s.ackedSamples.Head() - s.ackedSamples.Tail()
	attempted := s.attemptsSamples.Head() - s.attemptsSamples.Tail()

	if attempted == 0 {
		return 0, &util.ErrNoDataSamples{}
	}

	percentage := float64(acked*100) / float64(attempted)
	// rounding to two decimal digits
	percentage = math.Round(percentage*100) / 100
	s.logger.Info().Msgf("Status acked percentage = %f", percentage)
	return percentage, nil
}
