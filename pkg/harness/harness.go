// Package harness implements the probe operations run against a Pulsar
// cluster: typed production, offset resolution and schema registration.
package harness

import (
	"github.com/rs/zerolog"

	"github.com/afire007/pulsar-probe/pkg/client"
)

// Harness drives a cluster through a Connector. Every operation acquires the
// sessions it needs and releases them before returning, so a Harness holds
// no broker state between calls.
type Harness struct {
	connector client.Connector
	logger    *zerolog.Logger
}

// New returns a harness using the given connector for all broker access.
func New(connector client.Connector, logger *zerolog.Logger) *Harness {
	harnessLogger := logger.With().
		Str("component", "harness").
		Logger()

	return &Harness{
		connector: connector,
		logger:    &harnessLogger,
	}
}
