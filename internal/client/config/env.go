package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/rohitpatil05/finlens/internal/flagx"
)

// Environment variables recognized by the console.
const (
	envBaseURL      = "FINLENS_API_URL"
	envTimeout      = "FINLENS_TIMEOUT"
	envSessionFile  = "FINLENS_SESSION_FILE"
	envListCacheTTL = "FINLENS_LIST_CACHE_TTL"
)

// parseEnv overlays Config with values from the process environment.
// If a dotenv file is named via -e/-env (or ./.env exists), it is loaded
// first; real environment variables still win over dotenv entries.
// Durations accept either a plain number of seconds or a Go duration
// string like "45s".
func parseEnv(cfg *Config) {
	envFile := flagx.EnvFileFlag()
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		_ = godotenv.Load(envFile)
	}

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envSessionFile); v != "" {
		cfg.SessionFile = v
	}
	if d, ok := parseDuration(os.Getenv(envTimeout)); ok {
		cfg.RequestTimeout = d
	}
	if d, ok := parseDuration(os.Getenv(envListCacheTTL)); ok {
		cfg.ListCacheTTL = d
	}
}

func parseDuration(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, true
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, true
	}
	return 0, false
}

// defaultSessionFile places the session under the user config directory,
// falling back to the working directory when that is unavailable.
func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "finlens", "session.json")
}
