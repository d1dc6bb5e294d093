package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rohitpatil05/finlens/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given in whole seconds; zero values leave the current setting alone.
type jsonConfig struct {
	BaseURL             string `json:"base_url"`
	RequestTimeoutSecs  int    `json:"request_timeout_seconds"`
	SessionFile         string `json:"session_file"`
	ListCacheTTLSeconds int    `json:"list_cache_ttl_seconds"`
}

// parseJSON overlays Config with values loaded from the JSON file named
// via -c/-config. When no file is named, nothing happens. Read or
// unmarshal errors panic; the config stage runs before anything the user
// could lose.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeoutSecs > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSecs) * time.Second
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.ListCacheTTLSeconds > 0 {
		cfg.ListCacheTTL = time.Duration(jc.ListCacheTTLSeconds) * time.Second
	}
}
