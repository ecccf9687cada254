// internal/config/config.go
package config

import (
	"fmt"
	"net"
	"strconv"
)

// Config holds the process configuration, populated from flags and
// PROMPTCLASH_* environment variables by cmd/server.
type Config struct {
	Bind      string
	Port      int
	PublicURL string
	StaticDir string
	Verbose   bool
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}
