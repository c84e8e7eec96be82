package probe

import "time"

type Config struct {
	Topic                       string        `mapstructure:"topic"`
	Namespace                   string        `mapstructure:"namespace"`
	ClientID                    string        `mapstructure:"client-id"`
	MessagesPerProbe            int           `mapstructure:"messages-per-probe"`
	ProbeInterval               time.Duration `mapstructure:"probe-interval"`
	StatusCheckInterval         time.Duration `mapstructure:"status-check-interval"`
	StatusTimeWindow            time.Duration `mapstructure:"status-time-window"`
	EarliestReadTimeout         time.Duration `mapstructure:"earliest-read-timeout"`
	ProducerLatencyBuckets      []float64     `mapstructure:"producer-latency-buckets"`
	BootstrapBackoffMaxAttempts int           `mapstructure:"bootstrap-backoff-max-attempts"`
	BootstrapBackoffScale       time.Duration `mapstructure:"bootstrap-backoff-scale"`
}
