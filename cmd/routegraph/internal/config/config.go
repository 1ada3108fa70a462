// Package config resolves CLI settings from flags and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvNetwork  = "ROUTEGRAPH_NETWORK"
	EnvLogLevel = "ROUTEGRAPH_LOG_LEVEL"
)

// DefaultLogLevel is used when neither flag nor environment set a level.
const DefaultLogLevel = "warn"

// Config is the resolved CLI configuration.
type Config struct {
	// NetworkPath is the YAML network document; empty means the built-in network.
	NetworkPath string

	// LogLevel is an hclog level name.
	LogLevel string

	// Strict requires links to reference declared nodes.
	Strict bool
}

// Resolve fills empty fields from the environment and defaults, then
// validates the log level.
func Resolve(c Config) (Config, error) {
	if c.NetworkPath == "" {
		c.NetworkPath = os.Getenv(EnvNetwork)
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv(EnvLogLevel)
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return c, fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}

	return c, nil
}

// Level returns the hclog level for c.LogLevel.
func (c Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}
