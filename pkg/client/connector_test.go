package client

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewConnector(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name      string
		config    ConnectorConfig
		assertion assert.ErrorAssertionFunc
	}{
		{
			name: "Default",
			config: ConnectorConfig{
				ServiceURL: "pulsar://localhost:6650",
				AdminURL:   "http://localhost:8080",
			},
			assertion: assert.NoError,
		},
		{
			name: "TokenAuth",
			config: ConnectorConfig{
				ServiceURL: "pulsar://localhost:6650",
				AdminURL:   "http://localhost:8080",
				Auth:       AuthConfig{Token: "eyJh.fake.token"},
			},
			assertion: assert.NoError,
		},
		{
			name: "MissingServiceURL",
			config: ConnectorConfig{
				AdminURL: "http://localhost:8080",
			},
			assertion: assert.Error,
		},
		{
			name: "MissingAdminURL",
			config: ConnectorConfig{
				ServiceURL: "pulsar://localhost:6650",
			},
			assertion: assert.Error,
		},
		{
			name: "ConflictingTokenSources",
			config: ConnectorConfig{
				ServiceURL: "pulsar://localhost:6650",
				AdminURL:   "http://localhost:8080",
				Auth:       AuthConfig{Token: "eyJh.fake.token", TokenFile: "/var/run/secrets/token"},
			},
			assertion: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connector, err := NewConnector(tt.config, &logger)
			tt.assertion(t, err)
			if err == nil {
				assert.Equal(t, tt.config, connector.Config)
			}
		})
	}
}
