package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/afire007/pulsar-probe/internal/api"
	"github.com/afire007/pulsar-probe/internal/probe"
	"github.com/afire007/pulsar-probe/internal/services"
	"github.com/afire007/pulsar-probe/internal/signals"
	"github.com/afire007/pulsar-probe/internal/workers"
	"github.com/afire007/pulsar-probe/pkg/client"
	"github.com/afire007/pulsar-probe/pkg/harness"
)

var (
	version              = "development"
	metricsNamespace     = "pulsar_probe"
	clientCreationFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name:      "client_creation_error_total",
		Namespace: metricsNamespace,
		Help:      "Total number of errors while creating the Pulsar client",
	}, nil)
)

type Config struct {
	Host          string       `mapstructure:"host"`
	Port          int          `mapstructure:"port"`
	Level         string       `mapstructure:"level"`
	Output        string       `mapstructure:"output"`
	ServiceURL    string       `mapstructure:"service-url"`
	AdminURL      string       `mapstructure:"admin-url"`
	AuthToken     string       `mapstructure:"auth-token"`
	AuthTokenFile string       `mapstructure:"auth-token-file"`
	Probe         probe.Config `mapstructure:"probe"`
}

func main() {
	fs := pflag.NewFlagSet("default", pflag.ContinueOnError)
	fs.String("host", "", "Host to bind service to")
	fs.Int("port", 9898, "HTTP port to bind service to")
	fs.String("output", "json", "Output target [console, json]")
	fs.String("level", "info", "Log level [debug, info, warn, error, fatal, panic]")
	fs.String("service-url", "pulsar://localhost:6650", "Pulsar broker service URL")
	fs.String("admin-url", "http://localhost:8080", "Pulsar admin REST URL")
	fs.String("auth-token", "", "JWT token used to authenticate against the cluster")
	fs.String("auth-token-file", "", "File holding the JWT token used to authenticate against the cluster")
	fs.String("probe.topic", "persistent://public/default/pulsar-probe", "Name of the topic used by the probe")
	fs.String("probe.client-id", "pulsar-probe", "Id of the producer used by the probe")
	fs.String("probe.namespace", "", "Namespace whose topic sizes are reported by the probe")
	fs.Int("probe.messages-per-probe", 3, "Number of messages published per probe cycle")
	versionFlag := fs.BoolP("version", "v", false, "get version number")

	// Bind flags and environment variables
	viper.SetEnvPrefix("PULSAR_PROBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.BindPFlags(fs)
	viper.AutomaticEnv()

	// parse flags
	err := fs.Parse(os.Args[1:])
	switch {
	case err == pflag.ErrHelp:
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err.Error())
		fs.PrintDefaults()
		os.Exit(2)
	case *versionFlag:
		fmt.Println(version)
		os.Exit(0)
	}

	// Load config
	var config Config
	if err = viper.Unmarshal(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Config unmarshal failed: %s\n\n", err.Error())
		os.Exit(2)
	}
	// TODO: Make me flags
	// Configure the probe services
	config.Probe.ProducerLatencyBuckets = []float64{100, 500, 1000, 1500, 2000, 4000, 8000}
	config.Probe.ProbeInterval = 5 * time.Second
	config.Probe.StatusCheckInterval = 30 * time.Second
	config.Probe.StatusTimeWindow = 5 * time.Minute
	config.Probe.EarliestReadTimeout = 10 * time.Second
	config.Probe.BootstrapBackoffMaxAttempts = 10
	config.Probe.BootstrapBackoffScale = 5 * time.Second

	// Setup logger
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err.Error())
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if config.Output == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	logger = logger.With().
		Timestamp().
		Str("version", version).
		Str("service", "pulsar-probe").
		Logger()

	logConfig := config
	if logConfig.AuthToken != "" {
		logConfig.AuthToken = "[redacted]"
	}
	logger.Info().
		Str("config", fmt.Sprintf("%+v", logConfig)).
		Msg("Starting Pulsar Probe")

	// Build the connector shared by all probe services
	connectorConfig := client.ConnectorConfig{
		ServiceURL:        config.ServiceURL,
		AdminURL:          config.AdminURL,
		OperationTimeout:  30 * time.Second,
		ConnectionTimeout: 30 * time.Second,
		Auth: client.AuthConfig{
			Token:     config.AuthToken,
			TokenFile: config.AuthTokenFile,
		},
	}
	connector, err := client.NewConnector(connectorConfig, &logger)
	if err != nil {
		clientCreationFailed.With(nil).Inc()
		logger.Fatal().Err(err).Msg("Error creating the Pulsar connector")
	}
	probeHarness := harness.New(connector, &logger)

	producerService := services.NewProducerService(probeHarness, config.Probe, &logger)
	offsetsService := services.NewOffsetsService(probeHarness, config.Probe, &logger)
	schemaService := services.NewSchemaService(probeHarness, config.Probe, &logger)
	statusService := services.NewStatusService(config.Probe, offsetsService, &logger)

	// Start HTTP server
	srvCfg := api.Config{
		Host:    config.Host,
		Port:    config.Port,
		Service: "pulsar-probe",
	}
	srv, _ := api.NewServer(&srvCfg, statusService.StatusHandler(), &logger)
	httpServer, healthy, ready := srv.ListenAndServe()

	// start probe manager
	probeManager := workers.NewProbeManager(config.Probe, producerService, offsetsService, schemaService, statusService, &logger)
	probeManager.Start()

	// graceful shutdown
	stopCh := signals.SetupSignalHandler()
	serverShutdownTimeout := 5 * time.Second
	sd, _ := signals.NewShutdown(serverShutdownTimeout, &logger)
	sd.Graceful(stopCh, httpServer, probeManager, healthy, ready)
}
