package config

// QuotaConfig controls the shared-KV quota layer.
type QuotaConfig struct {
	// RedisAddr is the address of the shared Redis instance holding quota
	// counters and concurrency token sets.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// KeyPrefix namespaces all quota keys in the shared KV.
	KeyPrefix string

	// BypassRateLimits disables RATE limit enforcement globally.
	// Concurrency limits are never bypassed.
	BypassRateLimits bool
}

// LoadQuotaConfig reads quota knobs from the environment.
func LoadQuotaConfig() *QuotaConfig {
	return &QuotaConfig{
		RedisAddr:        envString("QUOTA_REDIS_ADDR", "localhost:6379"),
		RedisPassword:    envString("QUOTA_REDIS_PASSWORD", ""),
		RedisDB:          envInt("QUOTA_REDIS_DB", 0),
		KeyPrefix:        envString("QUOTA_KEY_PREFIX", "agentmaestro:quota"),
		BypassRateLimits: envBool("QUOTA_BYPASS_RATE_LIMITS", false),
	}
}
