// Package config provides configuration management for the requirement monitor.
//
// It utilizes Viper for loading configuration from an optional config.yaml,
// a .env file (via godotenv) and environment variables.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, metrics)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Monitor: storage root, snapshot backend and run interval of the reconciler
//
// Every field carries a default:"..." tag; nested keys map to environment
// variables by replacing dots with underscores (monitor.root -> MONITOR_ROOT).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Monitor.Root)
package config
