package api

// Config holds the bind address of the HTTP server exposing the status,
// health and metrics endpoints.
type Config struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Service string `mapstructure:"service"`
}
