package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/visitdesk/visitdesk/internal/flagx"
	"github.com/visitdesk/visitdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations rely
// on timex.Duration so JSON can specify them either as strings like "24h" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	DatabasePath *string         `json:"database_path"`
	TokenKey     *string         `json:"token_key"`
	SessionTTL   *timex.Duration `json:"session_ttl"`
	MockLatency  *timex.Duration `json:"mock_latency"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. Absent file path means no JSON layer. Fields left out of
// the file keep their current values. Read or unmarshal errors panic; the
// process has no useful way to continue with half a config.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.TokenKey != nil {
		cfg.TokenKey = *jc.TokenKey
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
	if jc.MockLatency != nil {
		cfg.MockLatency = time.Duration(jc.MockLatency.Duration)
	}
}
