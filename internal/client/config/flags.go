package config

import (
	"flag"
	"os"
	"time"

	"github.com/rohitpatil05/finlens/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backend base URL (default from Config)
//	-t int      request timeout in seconds
//	-s string   session file path
//	-l int      list cache TTL in seconds
//
// Only the flags handled here are parsed, via flagx.FilterArgs, so they
// coexist with flags owned by other stages and by the test runner.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file path")
	cacheSecs := fs.Int("l", int(cfg.ListCacheTTL.Seconds()), "list cache TTL (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
	cfg.ListCacheTTL = time.Duration(*cacheSecs) * time.Second
}
