package config

import "time"

// Config holds runtime settings for the FinLens console.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - RequestTimeout: client-side deadline for a single backend call.
//   - SessionFile: path of the JSON file holding the persisted session.
//   - ListCacheTTL: how long a fetched client list is served from the
//     store before the next list call goes back to the network.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	SessionFile    string
	ListCacheTTL   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 30 * time.Second
	c.SessionFile = defaultSessionFile()
	c.ListCacheTTL = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (optionally a dotenv file), a JSON config file and
// command-line flags, in that order. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
