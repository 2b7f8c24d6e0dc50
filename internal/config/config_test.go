package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "visitdesk.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 150*time.Millisecond, cfg.MockLatency)
	assert.Empty(t, cfg.TokenKey, "token key must have no default")
}

func TestParseJson_OverlaysOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"token_key": "from-json",
		"session_ttl": "12h"
	}`), 0o600))

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"admincli", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "from-json", cfg.TokenKey)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	// untouched fields keep their defaults
	assert.Equal(t, "visitdesk.db", cfg.DatabasePath)
	assert.Equal(t, 150*time.Millisecond, cfg.MockLatency)
}

func TestParseEnv_OverridesJson(t *testing.T) {
	t.Setenv("VISITDESK_TOKEN_KEY", "from-env")
	t.Setenv("VISITDESK_SESSION_TTL", "6h")

	var cfg Config
	cfg.LoadDefaults()
	cfg.TokenKey = "from-json"
	parseEnv(&cfg)

	assert.Equal(t, "from-env", cfg.TokenKey)
	assert.Equal(t, 6*time.Hour, cfg.SessionTTL)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"admincli", "-d", "alt.db", "-l", "5"}

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	assert.Equal(t, "alt.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Millisecond, cfg.MockLatency)
}

func TestJsonConfig_DurationAcceptsNanoseconds(t *testing.T) {
	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"mock_latency": 1000000}`), &jc))
	require.NotNil(t, jc.MockLatency)
	assert.Equal(t, time.Millisecond, jc.MockLatency.Duration)
}
