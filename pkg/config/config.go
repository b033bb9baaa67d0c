// Package config provides environment-driven configuration for the
// orchestration engine. Every knob has a default; Load reads the
// environment once at startup and returns typed sub-configs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates all engine configuration.
type Config struct {
	Executor   *ExecutorConfig
	Quota      *QuotaConfig
	Archive    *ArchiveConfig
	Toolrunner *ToolrunnerConfig
	Server     *ServerConfig
}

// Load reads configuration from the environment, applying defaults for
// unset knobs, and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Executor:   LoadExecutorConfig(),
		Quota:      LoadQuotaConfig(),
		Archive:    LoadArchiveConfig(),
		Toolrunner: LoadToolrunnerConfig(),
		Server:     LoadServerConfig(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every sub-config.
func (c *Config) Validate() error {
	if err := c.Executor.Validate(); err != nil {
		return fmt.Errorf("executor config: %w", err)
	}
	if err := c.Archive.Validate(); err != nil {
		return fmt.Errorf("archive config: %w", err)
	}
	if err := c.Toolrunner.Validate(); err != nil {
		return fmt.Errorf("toolrunner config: %w", err)
	}
	return nil
}

// --- env helpers ---

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envStringList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
