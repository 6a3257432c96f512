package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// An empty key disables authentication (local development only).
	ApiKey string `mapstructure:"api_key" default:""`
	// Metrics enables the Prometheus /metrics endpoint.
	Metrics bool `mapstructure:"metrics" default:"true"`
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
