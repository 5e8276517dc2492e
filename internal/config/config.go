package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds all configuration for the commitmsg server
type Config struct {
	// Workspace roots searched for open working copies, in order
	Roots []string

	// Transport selection: "stdio" or "http"
	Transport string

	// HTTP transport settings
	Port int

	// Optional shared secret; when set, the HTTP transport requires a
	// bearer JWT signed with it
	AuthSecret string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Roots:      splitRoots(getEnv("COMMITMSG_ROOTS", ".")),
		Transport:  getEnv("COMMITMSG_TRANSPORT", TransportStdio),
		Port:       getEnvInt("PORT", 8490),
		AuthSecret: os.Getenv("COMMITMSG_AUTH_SECRET"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Roots) == 0 {
		return fmt.Errorf("COMMITMSG_ROOTS must name at least one workspace root")
	}

	switch c.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.Port < 1 || c.Port > 65535 {
			return fmt.Errorf("invalid PORT for http transport: %d", c.Port)
		}
	default:
		return fmt.Errorf("unsupported transport: %s (expected %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}

	return nil
}

// splitRoots splits a PATH-style list and drops empty segments.
func splitRoots(raw string) []string {
	var roots []string
	for _, part := range strings.Split(raw, string(os.PathListSeparator)) {
		part = strings.TrimSpace(part)
		if part != "" {
			roots = append(roots, part)
		}
	}
	return roots
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
