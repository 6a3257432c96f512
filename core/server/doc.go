// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for the monitoring API: listen port, API key and
// whether the Prometheus endpoint is exposed.
package server
