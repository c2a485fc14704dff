package server

import (
	"fmt"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// Swagger enables the /swagger documentation routes.
	Swagger bool `mapstructure:"swagger" default:"true"`
	// ReadTimeoutSeconds bounds how long a request may take to be read.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"15"`
}

// Validate checks the server settings.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port %q", c.Port)
	}
	if c.ReadTimeoutSeconds < 0 {
		return fmt.Errorf("invalid read timeout %d", c.ReadTimeoutSeconds)
	}
	return nil
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
