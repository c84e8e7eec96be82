package client

import (
	"context"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/apache/pulsar-client-go/pulsaradmin"
	"github.com/rs/zerolog"
)

// ConnectorConfig contains the configuration used to construct a connector.
type ConnectorConfig struct {
	ServiceURL        string        `mapstructure:"service-url"`
	AdminURL          string        `mapstructure:"admin-url"`
	OperationTimeout  time.Duration `mapstructure:"operation-timeout"`
	ConnectionTimeout time.Duration `mapstructure:"connection-timeout"`
	TLS               TLSConfig     `mapstructure:"tls"`
	Auth              AuthConfig    `mapstructure:"auth"`
}

// TLSConfig stores the TLS-related configuration for a connection.
type TLSConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	CertPath   string `mapstructure:"cert-path"`
	KeyPath    string `mapstructure:"key-path"`
	CACertPath string `mapstructure:"ca-cert-path"`
	SkipVerify bool   `mapstructure:"skip-verify"`
}

// AuthConfig stores the token authentication configuration for a connection.
// Token and TokenFile are mutually exclusive.
type AuthConfig struct {
	Token     string `mapstructure:"token"`
	TokenFile string `mapstructure:"token-file"`
}

var _ Connector = (*PulsarConnector)(nil)

// PulsarConnector builds data plane and admin plane sessions from a single
// configuration. It holds no connection state itself.
type PulsarConnector struct {
	Config ConnectorConfig
	logger *zerolog.Logger
}

// NewConnector constructs a new PulsarConnector instance given the argument config.
func NewConnector(config ConnectorConfig, logger *zerolog.Logger) (*PulsarConnector, error) {
	if config.ServiceURL == "" {
		return nil, fmt.Errorf("connector requires a service URL")
	}
	if config.AdminURL == "" {
		return nil, fmt.Errorf("connector requires an admin URL")
	}
	if config.Auth.Token != "" && config.Auth.TokenFile != "" {
		return nil, fmt.Errorf("auth token and token file are mutually exclusive")
	}

	return &PulsarConnector{
		Config: config,
		logger: logger,
	}, nil
}

// Connect opens a data plane session. The caller owns the session and must
// close it.
func (c *PulsarConnector) Connect(_ context.Context) (Connection, error) {
	options := pulsar.ClientOptions{
		URL:               c.Config.ServiceURL,
		OperationTimeout:  c.Config.OperationTimeout,
		ConnectionTimeout: c.Config.ConnectionTimeout,
		Logger:            newPulsarLogger(c.logger),
	}

	if auth, err := c.authentication(); err != nil {
		return nil, err
	} else if auth != nil {
		options.Authentication = auth
	}

	if c.Config.TLS.Enabled {
		options.TLSTrustCertsFilePath = c.Config.TLS.CACertPath
		options.TLSAllowInsecureConnection = c.Config.TLS.SkipVerify
	}

	pulsarClient, err := pulsar.NewClient(options)
	if err != nil {
		return nil, err
	}

	return &pulsarConnection{client: pulsarClient}, nil
}

// ConnectAdmin opens an admin plane session against the management REST API.
func (c *PulsarConnector) ConnectAdmin(_ context.Context) (AdminSession, error) {
	config := &pulsaradmin.Config{
		WebServiceURL: c.Config.AdminURL,
		Token:         c.Config.Auth.Token,
		TokenFile:     c.Config.Auth.TokenFile,
	}

	if c.Config.TLS.Enabled {
		config.TLSTrustCertsFilePath = c.Config.TLS.CACertPath
		config.TLSAllowInsecureConnection = c.Config.TLS.SkipVerify
		config.TLSCertFile = c.Config.TLS.CertPath
		config.TLSKeyFile = c.Config.TLS.KeyPath
	}

	admin, err := pulsaradmin.NewClient(config)
	if err != nil {
		return nil, err
	}

	return &pulsarAdminSession{admin: admin}, nil
}

func (c *PulsarConnector) authentication() (pulsar.Authentication, error) {
	tls := c.Config.TLS
	if tls.Enabled && tls.CertPath != "" && tls.KeyPath != "" {
		return pulsar.NewAuthenticationTLS(tls.CertPath, tls.KeyPath), nil
	}

	switch {
	case c.Config.Auth.Token != "":
		return pulsar.NewAuthenticationToken(c.Config.Auth.Token), nil
	case c.Config.Auth.TokenFile != "":
		return pulsar.NewAuthenticationTokenFromFile(c.Config.Auth.TokenFile), nil
	default:
		return nil, nil
	}
}
