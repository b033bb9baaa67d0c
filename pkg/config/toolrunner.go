package config

import (
	"fmt"
	"time"
)

// ToolrunnerConfig controls the signed HTTP client for the remote
// tool-runner service.
type ToolrunnerConfig struct {
	// URL is the tool-runner base URL (the client POSTs to <URL>/v1/execute).
	URL string

	// Secret is the shared HMAC-SHA256 signing secret.
	Secret string

	// SignatureSkewSeconds is the maximum accepted clock skew between the
	// request timestamp and the receiver's clock.
	SignatureSkewSeconds int

	// HTTPTimeout bounds a single execute call end to end.
	HTTPTimeout time.Duration

	// DefaultTimeoutSeconds is the per-tool-call execution timeout sent in
	// the request body and enforced by the tool-runner.
	DefaultTimeoutSeconds int

	// MaxOutputBytes caps stdout/stderr captured by the tool-runner.
	MaxOutputBytes int
}

// LoadToolrunnerConfig reads tool-runner knobs from the environment.
func LoadToolrunnerConfig() *ToolrunnerConfig {
	return &ToolrunnerConfig{
		URL:                   envString("TOOLRUNNER_URL", "http://localhost:8090"),
		Secret:                envString("TOOLRUNNER_SECRET", ""),
		SignatureSkewSeconds:  envInt("TOOLRUNNER_SIGNATURE_SKEW_SECONDS", 300),
		HTTPTimeout:           envDuration("TOOLRUNNER_HTTP_TIMEOUT", 120*time.Second),
		DefaultTimeoutSeconds: envInt("TOOLRUNNER_DEFAULT_TIMEOUT_SECONDS", 60),
		MaxOutputBytes:        envInt("TOOLRUNNER_MAX_OUTPUT_BYTES", 1<<20),
	}
}

// Validate checks tool-runner configuration invariants.
func (c *ToolrunnerConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("toolrunner URL must not be empty")
	}
	if c.SignatureSkewSeconds < 1 {
		return fmt.Errorf("signature skew must be at least 1 second, got %d", c.SignatureSkewSeconds)
	}
	return nil
}
