package config

import "time"

// ServerConfig controls the HTTP + WebSocket surface.
type ServerConfig struct {
	// Port is the HTTP listen port.
	Port string

	// SessionSecret signs the session cookie.
	SessionSecret string

	// SessionCookieName is the cookie carrying the signed user session.
	SessionCookieName string

	// WSWriteTimeout bounds a single WebSocket frame write.
	WSWriteTimeout time.Duration

	// HTTPReadTimeout and HTTPWriteTimeout bound request handling.
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
}

// LoadServerConfig reads server knobs from the environment.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:              envString("HTTP_PORT", "8080"),
		SessionSecret:     envString("SESSION_SECRET", ""),
		SessionCookieName: envString("SESSION_COOKIE_NAME", "am_session"),
		WSWriteTimeout:    envDuration("WS_WRITE_TIMEOUT", 10*time.Second),
		HTTPReadTimeout:   envDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		HTTPWriteTimeout:  envDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
	}
}
