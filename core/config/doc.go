// Package config provides configuration management for the stats service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Log: Logging level and format
//   - Provider: Stats provider base URL, API key, mode lookup and circuit breaker
//   - Cache: Response cache driver (memory, redis, none) and TTL
//   - Storage: S3/MinIO credentials for raw snapshot archiving
//   - Database: Optional MySQL/SQLite connection holding alias overrides
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Provider.BaseURL)
package config
