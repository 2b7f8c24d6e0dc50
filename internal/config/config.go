// Package config assembles runtime settings for the visitdesk core.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults
//  2. JSON file (path from -c/-config)
//  3. environment variables (VISITDESK_ prefix)
//  4. command-line flags
//
// The token key is deliberately absent from the flag layer: secret material
// is injected through the environment or a config file, never echoed in a
// process listing.
package config

import "time"

// Config holds runtime settings for the visitdesk admin core.
//
// Fields:
//   - DatabasePath: path of the SQLite file backing the key-value store.
//   - TokenKey: passphrase the session-token cipher key is derived from.
//     Required; there is no built-in default on purpose.
//   - SessionTTL: how long an issued session token stays valid.
//   - MockLatency: simulated round-trip delay of the mock remote API.
type Config struct {
	DatabasePath string
	TokenKey     string
	SessionTTL   time.Duration
	MockLatency  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "visitdesk.db"
	c.SessionTTL = 24 * time.Hour
	c.MockLatency = 150 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
