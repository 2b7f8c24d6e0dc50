package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors the overridable fields as VISITDESK_-prefixed variables.
type envConfig struct {
	DatabasePath string        `envconfig:"DATABASE_PATH"`
	TokenKey     string        `envconfig:"TOKEN_KEY"`
	SessionTTL   time.Duration `envconfig:"SESSION_TTL"`
	MockLatency  time.Duration `envconfig:"MOCK_LATENCY"`
}

// parseEnv overlays cfg with environment variables. Unset variables keep the
// current values; a malformed value panics, same as a malformed JSON file.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process("visitdesk", &ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.TokenKey != "" {
		cfg.TokenKey = ec.TokenKey
	}
	if ec.SessionTTL != 0 {
		cfg.SessionTTL = ec.SessionTTL
	}
	if ec.MockLatency != 0 {
		cfg.MockLatency = ec.MockLatency
	}
}
