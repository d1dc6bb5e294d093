package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/rohitpatil05/finlens/internal/buildinfo"
	"github.com/rohitpatil05/finlens/internal/client/cli"
	"github.com/rohitpatil05/finlens/internal/client/config"
	"github.com/rohitpatil05/finlens/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app := cli.NewApp(cfg, log)
	app.Run(ctx)

}
