package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/rohitpatil05/finlens/internal/devserver"
	"github.com/rohitpatil05/finlens/internal/logging"
)

func main() {

	_ = godotenv.Load()

	addr := flag.String("addr", ":8000", "listen address")
	flag.Parse()

	secret := os.Getenv("FINLENS_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	srv := devserver.New(secret, logger)
	if err := srv.Listen(*addr); err != nil {
		log.Fatalf("%v", err)
	}

}
